// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const extMapKey = "extmap"

// Extension ids live in the 8-bit identifier space of RFC 8285; id 0 is
// reserved for padding.
const (
	// ExtMapValueMin is the smallest valid extension id.
	ExtMapValueMin = 1

	// ExtMapValueMax is the largest valid extension id.
	ExtMapValueMax = 255
)

// ExtMap represents the mapping of an RTP header extension id to the URI
// identifying the extension, as carried by the "a=extmap" attribute:
//
//	a=extmap:<value>["/"<direction>] <URI> <extensionattributes>
type ExtMap struct {
	Value     int
	Direction Direction
	URI       *url.URL
	ExtAttr   *string
}

// Name returns the attribute key under which an ExtMap is carried.
func (e *ExtMap) Name() string {
	return extMapKey
}

// Clone returns a deep copy of e.
func (e *ExtMap) Clone() *ExtMap {
	clone := &ExtMap{Value: e.Value, Direction: e.Direction}
	if e.URI != nil {
		uri := *e.URI
		clone.URI = &uri
	}
	if e.ExtAttr != nil {
		attr := *e.ExtAttr
		clone.ExtAttr = &attr
	}

	return clone
}

// Unmarshal parses a single extmap attribute into e. Accepted forms are
// the bare "extmap:..." payload and a complete "a=extmap:...\r\n" line.
// On failure e is left untouched; no partially populated value is ever
// produced.
func (e *ExtMap) Unmarshal(raw string) error {
	line := raw
	if strings.HasPrefix(line, attributeKey) {
		attr, err := UnmarshalAttribute(line)
		if err != nil {
			return err
		}
		line = attr.String()
	}

	key, value, found := strings.Cut(line, ":")
	if key != extMapKey {
		return fmt.Errorf("%w: %q", ErrUnexpectedAttributeKey, key)
	}
	if !found || value == "" {
		return fmt.Errorf("%w: %q", ErrMissingAttributeValue, raw)
	}

	// First space-delimited token is <value>["/"<direction>].
	fields := strings.SplitN(value, " ", 3)

	idToken, directionToken, hasDirection := strings.Cut(fields[0], "/")
	id, err := strconv.ParseInt(idToken, 10, 64)
	if err != nil || id < ExtMapValueMin || id > ExtMapValueMax {
		return fmt.Errorf("%w: %q is not in [%d, %d]",
			ErrInvalidExtensionID, idToken, ExtMapValueMin, ExtMapValueMax)
	}

	direction := DirectionUnspecified
	if hasDirection {
		direction, err = NewDirection(directionToken)
		if err != nil {
			return err
		}
	}

	var uri *url.URL
	if len(fields) > 1 {
		uri, err = url.Parse(fields[1])
		if err != nil || !uri.IsAbs() {
			return fmt.Errorf("%w: %q", ErrInvalidURI, fields[1])
		}
	}

	var extAttr *string
	if len(fields) > 2 {
		// Trailing extension attributes are carried verbatim, internal
		// spaces included.
		extAttr = &fields[2]
	}

	e.Value = int(id)
	e.Direction = direction
	e.URI = uri
	e.ExtAttr = extAttr

	return nil
}

// Marshal creates the attribute body for e, "extmap:" key included. It
// cannot fail; a validly constructed ExtMap always round-trips through
// Unmarshal.
func (e *ExtMap) Marshal() string {
	return e.Name() + ":" + e.string()
}

func (e *ExtMap) string() string {
	output := strconv.Itoa(e.Value)
	if direction := e.Direction.String(); direction != "" {
		output += "/" + direction
	}
	if e.URI != nil {
		output += " " + e.URI.String()
	}
	if e.ExtAttr != nil {
		output += " " + *e.ExtAttr
	}

	return output
}
