package main

import (
	"fmt"
)

type Stage string

const (
	LOADED  Stage = "loaded"
	SCANNED Stage = "scanned"
	SKIPPED Stage = "skipped"
)

// Event is published for each zone file a batch processes.
type Event struct {
	Msg     string `json:"msg"`
	Run     string `json:"run"`
	Stage   Stage  `json:"stage"`
	File    string `json:"file"`
	Domain  string `json:"domain,omitempty"`
	Names   int    `json:"names,omitempty"`
	Matches int    `json:"matches,omitempty"`
}

func (e *Event) String() string {
	msg := ""
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: ", e.Msg)
	}

	domain := ""
	if e.Domain != "" {
		domain = fmt.Sprintf(" | domain: %s;", e.Domain)
	}

	counts := ""
	if e.Stage != SKIPPED {
		counts = fmt.Sprintf(" | names: %d; matches: %d", e.Names, e.Matches)
	}

	return fmt.Sprintf(
		"%s%s %s | run: %s%s%s",
		msg,
		e.Stage,
		e.File,
		e.Run,
		domain,
		counts,
	)
}

func (e *Event) Event() string {
	return e.String()
}
