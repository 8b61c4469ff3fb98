// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
)

// Direction is a marker for the transmission direction of an endpoint.
type Direction int

const (
	// DirectionUnspecified is the zero value and stands for an attribute
	// that carries no direction at all. It is distinct from an invalid
	// direction token, which is a parse error.
	DirectionUnspecified Direction = iota

	// DirectionSendRecv is sendrecv.
	DirectionSendRecv

	// DirectionSendOnly is sendonly.
	DirectionSendOnly

	// DirectionRecvOnly is recvonly.
	DirectionRecvOnly

	// DirectionInactive is inactive.
	DirectionInactive
)

const (
	directionSendRecvStr = "sendrecv"
	directionSendOnlyStr = "sendonly"
	directionRecvOnlyStr = "recvonly"
	directionInactiveStr = "inactive"
)

// ErrDirectionString reports a token outside the closed direction
// vocabulary of RFC 4566.
var ErrDirectionString = errors.New("invalid direction string")

// NewDirection matches raw case-sensitively against the closed direction
// vocabulary. Any other token fails; it is never coerced to
// DirectionUnspecified.
func NewDirection(raw string) (Direction, error) {
	switch raw {
	case directionSendRecvStr:
		return DirectionSendRecv, nil
	case directionSendOnlyStr:
		return DirectionSendOnly, nil
	case directionRecvOnlyStr:
		return DirectionRecvOnly, nil
	case directionInactiveStr:
		return DirectionInactive, nil
	default:
		return DirectionUnspecified, fmt.Errorf("%w: %q", ErrDirectionString, raw)
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionSendRecv:
		return directionSendRecvStr
	case DirectionSendOnly:
		return directionSendOnlyStr
	case DirectionRecvOnly:
		return directionRecvOnlyStr
	case DirectionInactive:
		return directionInactiveStr
	default:
		return ""
	}
}
