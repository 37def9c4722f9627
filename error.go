package main

import (
	"errors"
	"fmt"
)

// checkNil checks if any of the provided values are nil and returns
// an error if they are.
func checkNil(values ...any) error {
	for _, value := range values {
		if value == nil {
			return fmt.Errorf("nil value of type %T", value)
		}
	}

	return nil
}

type Category string

const (
	INPUT   Category = "input"
	CONFIG  Category = "config"
	ZONE    Category = "zone"
	ADDRESS Category = "address"
)

func (c Category) String() string {
	return string(c)
}

// Sentinels for use with errors.Is; an *Error matches the sentinel
// of its category.
var (
	ErrInput         = &Error{Category: INPUT, Msg: "invalid input"}
	ErrConfig        = &Error{Category: CONFIG, Msg: "invalid configuration"}
	ErrZoneLoad      = &Error{Category: ZONE, Msg: "failed to load zone"}
	ErrAddressFormat = &Error{Category: ADDRESS, Msg: "invalid address"}
)

type Error struct {
	Msg      string   `json:"msg"`
	Inner    error    `json:"inner,omitempty"`
	Category Category `json:"category,omitempty"`
	File     string   `json:"file,omitempty"`
	Record   string   `json:"record,omitempty"`
}

func (e *Error) String() string {
	msg := e.Msg
	if e.Inner != nil {
		msg = fmt.Sprintf("%s: %s", e.Msg, e.Inner)
	}

	if e.Record != "" {
		msg = fmt.Sprintf("%s | %s", e.Record, msg)
	}

	if e.File != "" {
		msg = fmt.Sprintf("%s | %s", e.File, msg)
	}

	if e.Category != "" {
		msg = fmt.Sprintf("%s | %s", e.Category, msg)
	}

	return msg
}

func (e *Error) Error() string {
	return e.String()
}

func (e *Error) Unwrap() error {
	return e.Inner
}

// Is matches any *Error of the same category.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Category == e.Category
}

// zoneLoadErr wraps a failure to load the zone file at path.
func zoneLoadErr(path string, inner error) *Error {
	return &Error{
		Category: ZONE,
		Msg:      "failed to load zone",
		File:     path,
		Inner:    inner,
	}
}
