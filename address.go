package main

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Family is the IP version of an address.
type Family uint8

const (
	IPv4 Family = 4
	IPv6 Family = 6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// RecordType returns the address record type for the family.
func (f Family) RecordType() Type {
	if f == IPv6 {
		return TypeAAAA
	}

	return TypeA
}

// Normalize returns the canonical form of raw for comparison. IPv4
// addresses are returned dotted-decimal with any leading zeros removed and
// IPv6 addresses are returned fully expanded and lowercase
// (2001:0db8:0000:0000:0000:0000:0000:0001).
func Normalize(raw string, family Family) (string, error) {
	addr, err := parseFamily(strings.TrimSpace(raw), family)
	if err != nil {
		return "", err
	}

	return canonical(addr), nil
}

func parseFamily(raw string, family Family) (netip.Addr, error) {
	switch family {
	case IPv4:
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			addr, err = parseDotted(raw)
		}

		if err != nil || !addr.Is4() {
			return netip.Addr{}, addressErr(raw, family, err)
		}

		return addr, nil
	case IPv6:
		addr, err := netip.ParseAddr(raw)
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return netip.Addr{}, addressErr(raw, family, err)
		}

		return addr, nil
	default:
		return netip.Addr{}, addressErr(
			raw,
			family,
			fmt.Errorf("unsupported address family %d", family),
		)
	}
}

// parseDotted accepts dotted-quad addresses with zero padded octets
// (010.001.002.003) which netip rejects.
func parseDotted(raw string) (netip.Addr, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 4 {
		return netip.Addr{}, fmt.Errorf("%q is not dotted-quad", raw)
	}

	var octets [4]byte
	for i, p := range parts {
		if p == "" {
			return netip.Addr{}, fmt.Errorf("%q has an empty octet", raw)
		}

		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return netip.Addr{}, err
		}

		octets[i] = byte(v)
	}

	return netip.AddrFrom4(octets), nil
}

func canonical(addr netip.Addr) string {
	if addr.Is4() {
		return addr.String()
	}

	b := addr.As16()

	var sb strings.Builder
	sb.Grow(39)
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			sb.WriteByte(':')
		}

		fmt.Fprintf(&sb, "%02x%02x", b[i], b[i+1])
	}

	return sb.String()
}

func addressErr(raw string, family Family, inner error) *Error {
	return &Error{
		Category: ADDRESS,
		Msg:      fmt.Sprintf("%q is not a valid %s address", raw, family),
		Inner:    inner,
	}
}

// Target is the address being searched for. It is parsed once and
// read-only afterwards.
type Target struct {
	addr      netip.Addr
	canonical string
}

// ParseTarget parses user input into a Target. IPv4-mapped IPv6 input
// (::ffff:1.2.3.4) stays IPv6.
func ParseTarget(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, &Error{
			Category: INPUT,
			Msg:      "no target address provided",
		}
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		addr, err = parseDotted(raw)
	}

	if err != nil || addr.Zone() != "" {
		return Target{}, &Error{
			Category: INPUT,
			Msg:      fmt.Sprintf("%q is not a valid IP address", raw),
			Inner:    err,
		}
	}

	return Target{addr: addr, canonical: canonical(addr)}, nil
}

// Family returns the IP version of the target.
func (t Target) Family() Family {
	if t.addr.Is4() {
		return IPv4
	}

	return IPv6
}

// RecordType is the record type the target is searched in.
func (t Target) RecordType() Type {
	return t.Family().RecordType()
}

// Canonical returns the fully expanded form of the target.
func (t Target) Canonical() string {
	return t.canonical
}

// IsValid reports whether the target was parsed.
func (t Target) IsValid() bool {
	return t.addr.IsValid()
}

// Matches reports whether raw denotes the same address as the target.
func (t Target) Matches(raw string) (bool, error) {
	v, err := Normalize(raw, t.Family())
	if err != nil {
		return false, err
	}

	return v == t.canonical, nil
}

func (t Target) String() string {
	return t.addr.String()
}
