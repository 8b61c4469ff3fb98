// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pion/randutil"
)

// Origin defines the structure for the "o=" field which provides the
// originator of the session plus a session identifier and version:
//
//	o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
//
// RFC 4566 assumes the tuple of username, sess-id and unicast address to
// be globally unique per session; this layer validates field syntax only
// and does not enforce global uniqueness.
type Origin struct {
	// Username is nil when the originating host does not support the
	// concept of user ids, rendered as "-" on the wire.
	Username *Username

	SessionID uint64

	// SessionVersion is totally ordered; callers compare versions to
	// detect updated session descriptions.
	SessionVersion uint64

	UnicastAddress ConnAddress
}

// NewOrigin returns an Origin for addr with no username, a random 63-bit
// session id and the current NTP time as the initial session version,
// per common JSEP practice.
func NewOrigin(addr ConnAddress) (Origin, error) {
	id, err := randutil.CryptoUint64()
	if err != nil {
		return Origin{}, err
	}

	return Origin{
		SessionID:      id & (^(uint64(1) << 63)),
		SessionVersion: TimeToNTP(time.Now()),
		UnicastAddress: addr,
	}, nil
}

// String renders the full "o=" field value, e.g.
// "jdoe 2890844526 2890842807 IN IP4 10.47.16.5".
func (o Origin) String() string {
	username := "-"
	if o.Username != nil {
		username = o.Username.String()
	}

	return fmt.Sprintf("%s %d %d %s", username, o.SessionID, o.SessionVersion, o.UnicastAddress)
}

// Username validation errors.
var (
	ErrUsernameEmpty          = errors.New("username cannot be empty")
	ErrUsernameHyphen         = errors.New(`username cannot be "-", which denotes an absent username`)
	ErrUsernameContainsSpaces = errors.New("username cannot contain spaces")
)

// Username is the validated <username> of an Origin. A hyphen on the wire
// does not count as a Username but as its absence, modeled as a nil
// Origin.Username.
type Username struct {
	value string
}

// NewUsername validates raw and wraps it. It is the only way to obtain a
// Username; an invalid instance is unrepresentable.
func NewUsername(raw string) (Username, error) {
	switch {
	case raw == "":
		return Username{}, ErrUsernameEmpty
	case raw == "-":
		return Username{}, ErrUsernameHyphen
	case strings.Contains(raw, " "):
		return Username{}, fmt.Errorf("%w: %q", ErrUsernameContainsSpaces, raw)
	}

	return Username{value: raw}, nil
}

func (u Username) String() string {
	return u.value
}
