package main

import (
	"context"
	"fmt"
)

// Match is a zone entry whose address record contains the target. Domain
// is only set when the scanner was asked for structured output.
type Match struct {
	Domain string `json:"domain,omitempty"`
	Entry  string `json:"entry"`
}

func (m Match) String() string {
	if m.Domain == "" {
		return m.Entry
	}

	return fmt.Sprintf("%s %s", m.Domain, m.Entry)
}

// Scanner finds the names of a zone with an address record pointing at
// a target.
type Scanner struct {
	logger Logger

	// Structured records the zone's domain on each match.
	Structured bool
}

// NewScanner returns a Scanner logging diagnostics to logger.
func NewScanner(logger Logger, structured bool) (*Scanner, error) {
	err := checkNil(logger)
	if err != nil {
		return nil, err
	}

	return &Scanner{logger: logger, Structured: structured}, nil
}

// Scan returns, in zone order, every name whose A (IPv4 target) or AAAA
// (IPv6 target) record set contains target. Record values that do not
// parse as an address of the target's family are skipped. A nil result
// means nothing matched. A scan interrupted by ctx returns ctx's error and
// no matches.
func (s *Scanner) Scan(
	ctx context.Context,
	z Zone,
	target Target,
) ([]Match, error) {
	rtype := target.RecordType()

	var matches []Match
	for _, name := range z.Names() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		values, ok := Lookup(z, name, rtype)
		if !ok {
			s.logger.Debugw("skipping name",
				"domain", z.Domain(),
				"name", name,
				"reason", fmt.Sprintf("no %s record", rtype),
			)
			continue
		}

		if !s.contains(z, name, values, target) {
			continue
		}

		s.logger.Debugw("matched",
			"domain", z.Domain(),
			"name", name,
			"type", rtype.String(),
			"target", target.Canonical(),
			"values", values,
		)

		m := Match{Entry: name}
		if s.Structured {
			m.Domain = z.Domain()
		}

		matches = append(matches, m)
	}

	return matches, nil
}

func (s *Scanner) contains(
	z Zone,
	name string,
	values []string,
	target Target,
) bool {
	for _, v := range values {
		ok, err := target.Matches(v)
		if err != nil {
			s.logger.Debugw("skipping value",
				"domain", z.Domain(),
				"name", name,
				"value", v,
				"error", err,
			)
			continue
		}

		if ok {
			return true
		}
	}

	return false
}
