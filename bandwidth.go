// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bandwidth types registered by RFC 4566 and RFC 3890.
const (
	// BandwidthTypeAS is the application-specific maximum for a single
	// media at a single site; for RTP this is the session bandwidth of
	// RFC 3550 section 6.2.
	BandwidthTypeAS = "AS"

	// BandwidthTypeCT is the conference total: an upper limit for all the
	// media at all sites.
	BandwidthTypeCT = "CT"

	// BandwidthTypeTIAS is the Transport Independent Application Specific
	// maximum of RFC 3890, which excludes transport overhead.
	BandwidthTypeTIAS = "TIAS"
)

// bwTypeToken validates custom bandwidth type tokens per RFC 4566
// section 5.8.
var bwTypeToken = regexp.MustCompile(`^(X-)?[A-Za-z0-9]+$`)

// Bandwidth validation and parse errors.
var (
	ErrBandwidthTypeEmpty   = errors.New("bandwidth type cannot be empty")
	ErrBandwidthTypeInvalid = errors.New("bandwidth type must be alphanumeric with an optional X- prefix")
	ErrBandwidthSyntax      = errors.New("bandwidth must be <bwtype>:<bandwidth>")
	ErrBandwidthValue       = errors.New("invalid bandwidth value")
)

// Bandwidth describes a "b=" field value: one of the registered bandwidth
// types or a validated custom type, with a figure in kilobits per second
// unless the custom type defines otherwise (not enforced here). The zero
// value is not valid; construct through the New* constructors or
// UnmarshalBandwidth.
type Bandwidth struct {
	bwType string
	value  uint32
}

// NewBandwidthAS returns an application-specific bandwidth figure.
func NewBandwidthAS(kbps uint32) Bandwidth {
	return Bandwidth{bwType: BandwidthTypeAS, value: kbps}
}

// NewBandwidthCT returns a conference-total bandwidth figure.
func NewBandwidthCT(kbps uint32) Bandwidth {
	return Bandwidth{bwType: BandwidthTypeCT, value: kbps}
}

// NewBandwidthTIAS returns a transport-independent application-specific
// bandwidth figure.
func NewBandwidthTIAS(kbps uint32) Bandwidth {
	return Bandwidth{bwType: BandwidthTypeTIAS, value: kbps}
}

// NewCustomBandwidth returns a bandwidth figure under a custom type
// token, which must be alphanumeric with an optional "X-" prefix.
func NewCustomBandwidth(bwType string, value uint32) (Bandwidth, error) {
	switch {
	case bwType == "":
		return Bandwidth{}, ErrBandwidthTypeEmpty
	case !bwTypeToken.MatchString(bwType):
		return Bandwidth{}, fmt.Errorf("%w: %q", ErrBandwidthTypeInvalid, bwType)
	}

	return Bandwidth{bwType: bwType, value: value}, nil
}

// Type returns the bandwidth type token.
func (b Bandwidth) Type() string {
	return b.bwType
}

// Value returns the bandwidth figure.
func (b Bandwidth) Value() uint32 {
	return b.value
}

// IsCustom reports whether the type token is outside the registered set.
func (b Bandwidth) IsCustom() bool {
	switch b.bwType {
	case BandwidthTypeAS, BandwidthTypeCT, BandwidthTypeTIAS:
		return false
	default:
		return true
	}
}

// String renders the field value, e.g. "AS:128".
func (b Bandwidth) String() string {
	return b.bwType + ":" + strconv.FormatUint(uint64(b.value), 10)
}

// UnmarshalBandwidth parses the value of a "b=" line, dispatching on the
// leading type token.
func UnmarshalBandwidth(raw string) (Bandwidth, error) {
	bwType, value, found := strings.Cut(raw, ":")
	if !found {
		return Bandwidth{}, fmt.Errorf("%w: %q", ErrBandwidthSyntax, raw)
	}

	figure, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return Bandwidth{}, fmt.Errorf("%w: %q", ErrBandwidthValue, value)
	}

	switch bwType {
	case BandwidthTypeAS, BandwidthTypeCT, BandwidthTypeTIAS:
		return Bandwidth{bwType: bwType, value: uint32(figure)}, nil
	default:
		return NewCustomBandwidth(bwType, uint32(figure))
	}
}
