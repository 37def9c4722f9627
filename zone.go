package main

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miekg/dns"
)

// Zone is a parsed zone: an ordered set of owner names, each with the
// record sets attached to it.
type Zone interface {
	// Domain is the label the zone was loaded under.
	Domain() string

	// Names returns the owner names in the order they first appear in
	// the zone file.
	Names() []string

	// Name returns the record sets for an owner name.
	Name(name string) (NameRecord, bool)
}

// NameRecord holds the raw values of every record set of one owner name,
// keyed by record type, in file order.
type NameRecord map[Type][]string

// Records returns the values of the record set of type t.
func (n NameRecord) Records(t Type) ([]string, bool) {
	values, ok := n[t]
	if !ok || len(values) == 0 {
		return nil, false
	}

	return values, true
}

// Lookup returns the values of the t record set of name. It returns
// false when the name is not in the zone or has no record of that type,
// which for most names in a zone is the expected answer.
func Lookup(z Zone, name string, t Type) ([]string, bool) {
	rec, ok := z.Name(name)
	if !ok {
		return nil, false
	}

	return rec.Records(t)
}

// MemZone is an in-memory Zone.
type MemZone struct {
	domain  string
	names   []string
	records map[string]NameRecord
}

var _ Zone = (*MemZone)(nil)

// NewZone returns an empty zone for domain.
func NewZone(domain string) *MemZone {
	return &MemZone{
		domain:  domain,
		records: map[string]NameRecord{},
	}
}

// Add appends values to the t record set of name, registering the
// name if it has not been seen before. Names compare case-insensitively;
// the first spelling seen is the one Names reports.
func (z *MemZone) Add(name string, t Type, values ...string) *MemZone {
	key := dns.CanonicalName(name)

	rec, ok := z.records[key]
	if !ok {
		rec = NameRecord{}
		z.records[key] = rec
		z.names = append(z.names, name)
	}

	rec[t] = append(rec[t], values...)

	return z
}

func (z *MemZone) Domain() string {
	return z.domain
}

func (z *MemZone) Names() []string {
	out := make([]string, len(z.names))
	copy(out, z.names)

	return out
}

func (z *MemZone) Name(name string) (NameRecord, bool) {
	rec, ok := z.records[dns.CanonicalName(name)]
	return rec, ok
}

// Loader loads the zone stored at path for domain.
type Loader interface {
	Load(ctx context.Context, domain, path string) (Zone, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, domain, path string) (Zone, error)

func (f LoaderFunc) Load(ctx context.Context, domain, path string) (Zone, error) {
	return f(ctx, domain, path)
}

// ZoneFileLoader reads BIND9 format zone files using the
// miekg/dns zone parser.
type ZoneFileLoader struct {
	// DefaultTTL is applied to records when the file has no $TTL.
	DefaultTTL uint32

	// Include allows $INCLUDE directives.
	Include bool
}

// Load implements Loader. Files ending in .gz are decompressed.
func (l *ZoneFileLoader) Load(
	ctx context.Context,
	domain, path string,
) (Zone, error) {
	select {
	case <-ctx.Done():
		return nil, zoneLoadErr(path, ctx.Err())
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, zoneLoadErr(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, zoneLoadErr(path, err)
		}
		defer gz.Close()

		r = gz
	}

	z, err := ParseZone(r, domain, path, l.DefaultTTL, l.Include)
	if err != nil {
		return nil, zoneLoadErr(path, err)
	}

	return z, nil
}

// ParseZone parses a zone from r with domain as the origin.
func ParseZone(
	r io.Reader,
	domain, file string,
	ttl uint32,
	include bool,
) (*MemZone, error) {
	// NOTE: (miekg/dns) Callers should not assume all returned data in an
	// Resource Record is syntactically correct, e.g. illegal base64 in RRSIGs
	// will be returned as-is.
	zp := dns.NewZoneParser(r, dns.Fqdn(domain), file)
	zp.SetIncludeAllowed(include)
	if ttl > 0 {
		zp.SetDefaultTTL(ttl)
	}

	z := NewZone(domain)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		z.Add(rr.Header().Name, Type(rr.Header().Rrtype), value(rr))
	}

	if err := zp.Err(); err != nil {
		return nil, err
	}

	return z, nil
}

// value returns the data portion of a resource record as text.
func value(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.A:
		return v.A.String()
	case *dns.AAAA:
		return v.AAAA.String()
	case *dns.CNAME:
		return v.Target
	}

	return strings.TrimSpace(
		strings.TrimPrefix(rr.String(), rr.Header().String()),
	)
}

// DomainFromFile derives the zone's domain from its file name, dropping
// the directory, any .gz suffix, and the final extension.
func DomainFromFile(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")

	return strings.TrimSuffix(base, filepath.Ext(base))
}
