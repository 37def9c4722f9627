package main

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// HostRecord splits a hostname into the registered domain it belongs to
// and the fully qualified entry, using the public suffix list
// (www.example.co.uk -> example.co.uk, www.example.co.uk).
func HostRecord(host string) (Match, error) {
	fqdn := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
	if fqdn == "" {
		return Match{}, &Error{Category: INPUT, Msg: "empty hostname"}
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(fqdn)
	if err != nil {
		return Match{}, &Error{
			Category: INPUT,
			Msg:      fmt.Sprintf("%q has no registered domain", host),
			Inner:    err,
		}
	}

	return Match{Domain: domain, Entry: fqdn}, nil
}

// HostRecords runs HostRecord over every host, stopping at the first
// error.
func HostRecords(hosts ...string) (Results, error) {
	var out Results
	for _, h := range hosts {
		m, err := HostRecord(h)
		if err != nil {
			return nil, err
		}

		out = Merge(out, m)
	}

	return out, nil
}
