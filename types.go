package main

import (
	"github.com/miekg/dns"
)

// Type is a wrapper over uint16 to simplify the mapping to
// the dns.Type type in the dns package.
type Type uint16

const (
	TypeA     = Type(dns.TypeA)
	TypeAAAA  = Type(dns.TypeAAAA)
	TypeCNAME = Type(dns.TypeCNAME)
)

func (t Type) String() string {
	return dns.Type(t).String()
}
