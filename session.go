// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "errors"

// Session field validation errors.
var (
	ErrSessionNameEmpty = errors.New("session name cannot be empty")
	ErrInformationEmpty = errors.New("session information cannot be empty")
)

// SessionName is the validated value of the "s=" field. RFC 4566 requires
// it to be non-empty; a session with no meaningful name uses a single
// space.
type SessionName struct {
	value string
}

// NewSessionName validates raw and wraps it.
func NewSessionName(raw string) (SessionName, error) {
	if raw == "" {
		return SessionName{}, ErrSessionNameEmpty
	}

	return SessionName{value: raw}, nil
}

// DefaultSessionName returns the RFC 4566 default of a single space.
func DefaultSessionName() SessionName {
	return SessionName{value: " "}
}

func (s SessionName) String() string {
	return s.value
}

// Information is the validated value of the "i=" field, carrying textual
// information about the session.
type Information struct {
	value string
}

// NewInformation validates raw and wraps it.
func NewInformation(raw string) (Information, error) {
	if raw == "" {
		return Information{}, ErrInformationEmpty
	}

	return Information{value: raw}, nil
}

func (i Information) String() string {
	return i.value
}
