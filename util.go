// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sdp implements the validated value layer of the Session
// Description Protocol (RFC 4566): typed models for SDP fields that can
// only be constructed through validating constructors, plus the line
// codec for "a=" attributes.
package sdp

import (
	"fmt"
	"strings"
)

const (
	attributeKey = "a="
	endLine      = "\r\n"

	unknownStr = "unknown"
)

// Attribute describes the "a=" field, the primary means for extending SDP.
// Attributes come in property form ("a=<flag>") and value form
// ("a=<attribute>:<value>").
type Attribute struct {
	Key   string
	Value string
}

// NewPropertyAttribute constructs an attribute in property form.
func NewPropertyAttribute(key string) Attribute {
	return Attribute{Key: key}
}

// NewAttribute constructs an attribute in value form.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// UnmarshalAttribute parses one complete attribute line. The line must
// begin with the "a=" prefix and end with the CRLF terminator; the body
// between them is split on the first ":" into key and value. A body
// without ":" is a property attribute and yields an empty Value; a body
// with ":" but nothing after it is rejected, so an empty Value always
// means the colon was absent and Marshal reproduces the line exactly.
func UnmarshalAttribute(line string) (Attribute, error) {
	body, ok := strings.CutPrefix(line, attributeKey)
	if !ok {
		return Attribute{}, fmt.Errorf("%w: %q", ErrMissingAttributePrefix, line)
	}
	body, ok = strings.CutSuffix(body, endLine)
	if !ok {
		return Attribute{}, fmt.Errorf("%w: %q", ErrMissingLineTerminator, line)
	}

	key, value, found := strings.Cut(body, ":")
	if key == "" {
		return Attribute{}, fmt.Errorf("%w: %q", ErrEmptyAttributeKey, line)
	}
	if found && value == "" {
		return Attribute{}, fmt.Errorf("%w: %q", ErrEmptyAttributeValue, line)
	}

	return Attribute{Key: key, Value: value}, nil
}

// Marshal renders the attribute back into a complete wire line,
// "a=" prefix and CRLF terminator included. It cannot fail, which is what
// makes every successfully parsed attribute round-trip byte for byte.
func (a Attribute) Marshal() string {
	if a.Value == "" {
		return attributeKey + a.Key + endLine
	}

	return attributeKey + a.Key + ":" + a.Value + endLine
}

// String renders the attribute body without the line framing.
func (a Attribute) String() string {
	if a.Value == "" {
		return a.Key
	}

	return a.Key + ":" + a.Value
}
