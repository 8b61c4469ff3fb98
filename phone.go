// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "errors"

// ErrPhoneNumberEmpty is returned for an empty "p=" value.
var ErrPhoneNumberEmpty = errors.New("phone number cannot be empty")

// PhoneNumber is the validated value of the "p=" field.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and wraps it.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if raw == "" {
		return PhoneNumber{}, ErrPhoneNumberEmpty
	}

	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}
