// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// AddressType represents the <addrtype> token of connection data fields.
type AddressType int

const (
	// AddressTypeIP4 is IP4.
	AddressTypeIP4 AddressType = iota + 1

	// AddressTypeIP6 is IP6.
	AddressTypeIP6
)

const (
	addressTypeIP4Str = "IP4"
	addressTypeIP6Str = "IP6"

	// The only <nettype> registered by RFC 4566.
	networkTypeInternetStr = "IN"
)

// Connection address validation and parse errors.
var (
	ErrUnknownAddressType   = errors.New("unknown address type")
	ErrUnknownNetworkType   = errors.New("unknown network type")
	ErrAddressTypeMismatch  = errors.New("address type does not match the address literal")
	ErrInvalidIPAddress     = errors.New("invalid ip address")
	ErrDomainEmpty          = errors.New("domain cannot be empty")
	ErrDomainContainsSpaces = errors.New("domain cannot contain spaces")
	ErrConnAddressSyntax    = errors.New("connection address must be <nettype> <addrtype> <address>")
)

// NewAddressType matches raw against the closed IP4/IP6 vocabulary.
func NewAddressType(raw string) (AddressType, error) {
	switch raw {
	case addressTypeIP4Str:
		return AddressTypeIP4, nil
	case addressTypeIP6Str:
		return AddressTypeIP6, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAddressType, raw)
	}
}

func (t AddressType) String() string {
	switch t {
	case AddressTypeIP4:
		return addressTypeIP4Str
	case AddressTypeIP6:
		return addressTypeIP6Str
	default:
		return unknownStr
	}
}

// ConnAddress is the <nettype> <addrtype> <address> triple carried by the
// "o=" and "c=" fields. It is closed over two shapes: an IP literal, whose
// address type is derived from the IP version, and a fully qualified
// domain name, which carries its address type explicitly. The tag of an
// FQDN may legitimately differ from what the domain eventually resolves
// to; this layer never resolves domains.
//
// The zero value is not valid; construct through NewIPAddress,
// NewFQDNAddress or UnmarshalConnAddress.
type ConnAddress struct {
	domain   string
	addrType AddressType // carried tag, FQDN shape only
	ip       netip.Addr
}

// NewIPAddress constructs a connection address from an IP literal.
func NewIPAddress(ip netip.Addr) (ConnAddress, error) {
	if !ip.IsValid() {
		return ConnAddress{}, ErrInvalidIPAddress
	}

	return ConnAddress{ip: ip}, nil
}

// NewFQDNAddress constructs a connection address from a domain name and
// an explicit address type tag.
func NewFQDNAddress(addrType AddressType, domain string) (ConnAddress, error) {
	switch addrType {
	case AddressTypeIP4, AddressTypeIP6:
	default:
		return ConnAddress{}, fmt.Errorf("%w: %d", ErrUnknownAddressType, addrType)
	}
	switch {
	case domain == "":
		return ConnAddress{}, ErrDomainEmpty
	case strings.Contains(domain, " "):
		return ConnAddress{}, fmt.Errorf("%w: %q", ErrDomainContainsSpaces, domain)
	}

	return ConnAddress{domain: domain, addrType: addrType}, nil
}

// IsFQDN reports whether the address is a domain name rather than an IP
// literal.
func (c ConnAddress) IsFQDN() bool {
	return c.domain != ""
}

// AddrType returns IP4 or IP6: derived from the IP version for the IP
// shape, the explicitly carried tag for the FQDN shape. A 4-in-6 mapped
// address ("::ffff:192.0.2.1") is IP6, matching its textual form.
func (c ConnAddress) AddrType() AddressType {
	if c.IsFQDN() {
		return c.addrType
	}
	if c.ip.Is4() {
		return AddressTypeIP4
	}

	return AddressTypeIP6
}

// IP returns the IP literal, or false for the FQDN shape.
func (c ConnAddress) IP() (netip.Addr, bool) {
	return c.ip, !c.IsFQDN() && c.ip.IsValid()
}

// Domain returns the domain name, or false for the IP shape.
func (c ConnAddress) Domain() (string, bool) {
	return c.domain, c.IsFQDN()
}

// String renders the full triple, e.g. "IN IP4 224.2.36.42".
func (c ConnAddress) String() string {
	address := c.domain
	if !c.IsFQDN() {
		address = c.ip.String()
	}

	return networkTypeInternetStr + " " + c.AddrType().String() + " " + address
}

// UnmarshalConnAddress parses a <nettype> <addrtype> <address> triple. An
// address that parses as an IP literal must agree with the addrtype tag;
// anything else is kept as a domain name.
func UnmarshalConnAddress(raw string) (ConnAddress, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return ConnAddress{}, fmt.Errorf("%w: %q", ErrConnAddressSyntax, raw)
	}
	if fields[0] != networkTypeInternetStr {
		return ConnAddress{}, fmt.Errorf("%w: %q", ErrUnknownNetworkType, fields[0])
	}

	addrType, err := NewAddressType(fields[1])
	if err != nil {
		return ConnAddress{}, err
	}

	if ip, ipErr := netip.ParseAddr(fields[2]); ipErr == nil {
		addr, _ := NewIPAddress(ip)
		if addr.AddrType() != addrType {
			return ConnAddress{}, fmt.Errorf("%w: %q is not %s", ErrAddressTypeMismatch, fields[2], addrType)
		}

		return addr, nil
	}

	return NewFQDNAddress(addrType, fields[2])
}
