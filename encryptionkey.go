// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// EncryptionKeyMethod enumerates the key exchange methods of the "k="
// field, RFC 4566 section 5.12.
type EncryptionKeyMethod int

const (
	// EncryptionKeyMethodClear carries the key untransformed.
	EncryptionKeyMethodClear EncryptionKeyMethod = iota + 1

	// EncryptionKeyMethodBase64 carries the key base64 encoded.
	EncryptionKeyMethodBase64

	// EncryptionKeyMethodURI refers to the key by URI, possibly behind
	// additional authentication.
	EncryptionKeyMethodURI

	// EncryptionKeyMethodPrompt carries no key; the user is to be
	// prompted when joining the session.
	EncryptionKeyMethodPrompt
)

const (
	encryptionKeyMethodClearStr  = "clear"
	encryptionKeyMethodBase64Str = "base64"
	encryptionKeyMethodURIStr    = "uri"
	encryptionKeyMethodPromptStr = "prompt"

	redactedStr = "[redacted]"
)

// Encryption key validation and parse errors.
var (
	ErrEncryptionKeyEmpty         = errors.New("encryption key cannot be empty")
	ErrEncryptionKeyMissingURI    = errors.New("encryption key uri cannot be nil")
	ErrEncryptionMethodUnknown    = errors.New("unknown encryption key method")
	ErrEncryptionMethodHasPayload = errors.New("prompt encryption keys carry no payload")
)

func (m EncryptionKeyMethod) String() string {
	switch m {
	case EncryptionKeyMethodClear:
		return encryptionKeyMethodClearStr
	case EncryptionKeyMethodBase64:
		return encryptionKeyMethodBase64Str
	case EncryptionKeyMethodURI:
		return encryptionKeyMethodURIStr
	case EncryptionKeyMethodPrompt:
		return encryptionKeyMethodPromptStr
	default:
		return unknownStr
	}
}

// EncryptionKey models a "k=" field. Clear and base64 keys hold their
// payload as a secret: every fmt rendering of an EncryptionKey redacts
// it, and only the explicit Marshal wire path exposes the raw text. The
// payload is exclusively owned by its EncryptionKey; no accessor hands
// out an alias.
//
// The zero value is not valid; construct through the New* constructors
// or UnmarshalEncryptionKey.
type EncryptionKey struct {
	method  EncryptionKeyMethod
	payload secretText
	uri     *url.URL
}

// NewClearEncryptionKey wraps an untransformed key.
func NewClearEncryptionKey(key string) (EncryptionKey, error) {
	if key == "" {
		return EncryptionKey{}, ErrEncryptionKeyEmpty
	}

	return EncryptionKey{method: EncryptionKeyMethodClear, payload: secretText{value: key}}, nil
}

// NewBase64EncryptionKey wraps a base64 encoded key.
func NewBase64EncryptionKey(key string) (EncryptionKey, error) {
	if key == "" {
		return EncryptionKey{}, ErrEncryptionKeyEmpty
	}

	return EncryptionKey{method: EncryptionKeyMethodBase64, payload: secretText{value: key}}, nil
}

// NewURIEncryptionKey wraps a URI the key can be obtained from. The URI
// is carried as text and never dereferenced by this layer.
func NewURIEncryptionKey(uri *url.URL) (EncryptionKey, error) {
	if uri == nil {
		return EncryptionKey{}, ErrEncryptionKeyMissingURI
	}

	return EncryptionKey{method: EncryptionKeyMethodURI, uri: uri}, nil
}

// NewPromptEncryptionKey returns the payload-free prompt form.
func NewPromptEncryptionKey() EncryptionKey {
	return EncryptionKey{method: EncryptionKeyMethodPrompt}
}

// Method returns the key exchange method.
func (k EncryptionKey) Method() EncryptionKeyMethod {
	return k.method
}

// URI returns the key URI, or false for the other methods.
func (k EncryptionKey) URI() (*url.URL, bool) {
	return k.uri, k.method == EncryptionKeyMethodURI
}

// Marshal renders the wire form of the field value, e.g. "clear:aGVsbG8".
// This is the only path that exposes a clear or base64 payload.
func (k EncryptionKey) Marshal() string {
	switch k.method {
	case EncryptionKeyMethodPrompt:
		return encryptionKeyMethodPromptStr
	case EncryptionKeyMethodURI:
		return encryptionKeyMethodURIStr + ":" + k.uri.String()
	default:
		return k.method.String() + ":" + k.payload.reveal()
	}
}

// String renders the key with its payload redacted.
func (k EncryptionKey) String() string {
	switch k.method {
	case EncryptionKeyMethodClear, EncryptionKeyMethodBase64:
		return k.method.String() + ":" + redactedStr
	default:
		return k.Marshal()
	}
}

// GoString renders the key with its payload redacted.
func (k EncryptionKey) GoString() string {
	return k.String()
}

// Format implements fmt.Formatter so that every verb, including %#v and
// %+v, goes through the redacting String rendering rather than struct
// reflection.
func (k EncryptionKey) Format(state fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(state, "%q", k.String())

		return
	}
	_, _ = io.WriteString(state, k.String())
}

// UnmarshalEncryptionKey parses the value of a "k=" line, dispatching on
// the leading method token.
func UnmarshalEncryptionKey(raw string) (EncryptionKey, error) {
	method, value, found := strings.Cut(raw, ":")
	switch method {
	case encryptionKeyMethodPromptStr:
		if found {
			return EncryptionKey{}, fmt.Errorf("%w: %q", ErrEncryptionMethodHasPayload, raw)
		}

		return NewPromptEncryptionKey(), nil
	case encryptionKeyMethodClearStr:
		return NewClearEncryptionKey(value)
	case encryptionKeyMethodBase64Str:
		return NewBase64EncryptionKey(value)
	case encryptionKeyMethodURIStr:
		uri, err := url.Parse(value)
		if err != nil || !uri.IsAbs() {
			return EncryptionKey{}, fmt.Errorf("%w: %q", ErrInvalidURI, value)
		}

		return NewURIEncryptionKey(uri)
	default:
		return EncryptionKey{}, fmt.Errorf("%w: %q", ErrEncryptionMethodUnknown, method)
	}
}

// secretText holds an opaque payload and redacts itself from every fmt
// verb; the raw value is reachable only through reveal.
type secretText struct {
	value string
}

func (s secretText) reveal() string {
	return s.value
}

func (s secretText) String() string {
	return redactedStr
}

func (s secretText) GoString() string {
	return redactedStr
}

// Format implements fmt.Formatter.
func (s secretText) Format(state fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(state, "%q", redactedStr)

		return
	}
	_, _ = io.WriteString(state, redactedStr)
}
