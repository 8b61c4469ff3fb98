// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "errors"

// Attribute line codec errors.
var (
	ErrMissingAttributePrefix = errors.New(`attribute line is missing the "a=" prefix`)
	ErrMissingLineTerminator  = errors.New("attribute line is missing the CRLF terminator")
	ErrEmptyAttributeKey      = errors.New("attribute key cannot be empty")
	ErrEmptyAttributeValue    = errors.New(`attribute value cannot be empty when ":" is present`)
)

// Structured attribute parse errors.
var (
	ErrUnexpectedAttributeKey = errors.New("unexpected attribute key")
	ErrMissingAttributeValue  = errors.New("attribute carries no value")
	ErrInvalidExtensionID     = errors.New("invalid extension id")
	ErrInvalidURI             = errors.New("invalid uri")
)
