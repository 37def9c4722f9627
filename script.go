package main

import (
	"fmt"
	"strings"

	"go.structs.dev/gen"
)

// Action is the change a script line asks the DNS manager to make.
type Action string

const (
	ADD Action = "add"
	DEL Action = "del"
)

// ParseAction validates a script action name.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ADD, DEL:
		return a, nil
	}

	return "", &Error{
		Category: CONFIG,
		Msg:      fmt.Sprintf("invalid script action %q; must be add or del", s),
	}
}

// Mode selects the script line template.
type Mode uint8

const (
	AddA Mode = iota + 1
	DelA
	AddAAAA
	DelAAAA
	AddCNAME
	DelCNAME
)

var modeCommands = gen.FMap[Mode, string]{
	AddA:     "add_address_record",
	DelA:     "del_address_record",
	AddAAAA:  "add_aaaa_record",
	DelAAAA:  "del_aaaa_record",
	AddCNAME: "add_cname_record",
	DelCNAME: "del_cname_record",
}

var commandModes = modeCommands.Flip()

// ModeFromCommand returns the mode rendering the given command verb.
func ModeFromCommand(cmd string) (Mode, bool) {
	m, ok := commandModes[cmd]
	return m, ok
}

func (m Mode) String() string {
	return modeCommands[m]
}

// SelectMode picks the template for action from whichever of address or
// cname is set, and returns the value the lines carry. Exactly one of the
// two must be set. IPv6 values are written in compressed form.
func SelectMode(action Action, address *Target, cname string) (Mode, string, error) {
	hasAddr := address != nil && address.IsValid()
	cname = strings.TrimSpace(cname)

	if hasAddr == (cname != "") {
		return 0, "", &Error{
			Category: CONFIG,
			Msg:      "exactly one of a target address or a cname target must be set",
		}
	}

	if action != ADD && action != DEL {
		_, err := ParseAction(string(action))
		return 0, "", err
	}

	add := action == ADD
	switch {
	case cname != "":
		if add {
			return AddCNAME, cname, nil
		}
		return DelCNAME, cname, nil
	case address.Family() == IPv6:
		if add {
			return AddAAAA, address.String(), nil
		}
		return DelAAAA, address.String(), nil
	default:
		if add {
			return AddA, address.Canonical(), nil
		}
		return DelA, address.Canonical(), nil
	}
}

// Line is one rendered script command.
type Line struct {
	Domain string
	Entry  string
	Mode   Mode
	Value  string
}

func (l Line) String() string {
	return fmt.Sprintf(
		"%s %s %s %s",
		l.Mode,
		l.Domain,
		strings.TrimSuffix(l.Entry, "."),
		l.Value,
	)
}

// Lines builds a script line for every match.
func Lines(matches []Match, mode Mode, value string) []Line {
	lines := make([]Line, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, Line{
			Domain: m.Domain,
			Entry:  m.Entry,
			Mode:   mode,
			Value:  value,
		})
	}

	return lines
}

// Render returns the script text for matches, one line per match in
// match order.
func Render(matches []Match, mode Mode, value string) []string {
	out := make([]string, 0, len(matches))
	for _, l := range Lines(matches, mode, value) {
		out = append(out, l.String())
	}

	return out
}
