// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "errors"

// ErrEmailAddressEmpty is returned for an empty "e=" value.
var ErrEmailAddressEmpty = errors.New("email address cannot be empty")

// EmailAddress is the validated value of the "e=" field. RFC 4566 allows
// both plain addresses and the "address (name)" / "name <address>" forms,
// so no structure beyond non-emptiness is imposed here.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates raw and wraps it.
func NewEmailAddress(raw string) (EmailAddress, error) {
	if raw == "" {
		return EmailAddress{}, ErrEmailAddressEmpty
	}

	return EmailAddress{value: raw}, nil
}

func (e EmailAddress) String() string {
	return e.value
}
