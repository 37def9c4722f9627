package main

import (
	"slices"
	"strings"
)

// Results accumulates matches across the zones of one run, file order
// outer and match order inner. It is owned by the caller.
type Results []Match

// Merge returns acc followed by matches. Duplicates are kept since the
// same entry in two zones is two distinct records. acc is never written
// through, so merges from a shared base stay independent.
func Merge(acc Results, matches ...Match) Results {
	return append(slices.Clip(acc), matches...)
}

// Entries returns the matched names.
func (r Results) Entries() []string {
	out := make([]string, 0, len(r))
	for _, m := range r {
		out = append(out, m.Entry)
	}

	return out
}

// Empty reports a run that found nothing.
func (r Results) Empty() bool {
	return len(r) == 0
}

func (r Results) String() string {
	return strings.Join(r.Entries(), "\n")
}
