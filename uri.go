// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrURIEmpty is returned for an empty "u=" value.
var ErrURIEmpty = errors.New("uri cannot be empty")

// URIField is the validated value of the "u=" field: an absolute URI
// pointing to additional information about the session. The URI is
// carried as text and never dereferenced by this layer.
type URIField struct {
	value *url.URL
}

// NewURIField validates raw as an absolute URI and wraps it.
func NewURIField(raw string) (URIField, error) {
	if raw == "" {
		return URIField{}, ErrURIEmpty
	}

	uri, err := url.Parse(raw)
	if err != nil || !uri.IsAbs() {
		return URIField{}, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}

	return URIField{value: uri}, nil
}

// URL returns a copy of the parsed URI, so the validated value cannot be
// mutated through it.
func (u URIField) URL() *url.URL {
	if u.value == nil {
		return nil
	}
	uri := *u.value

	return &uri
}

func (u URIField) String() string {
	if u.value == nil {
		return ""
	}

	return u.value.String()
}
