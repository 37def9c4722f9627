package main

import (
	"errors"
	"reflect"
	"testing"
)

func Test_Render(t *testing.T) {
	matches := []Match{
		{Domain: "example.com", Entry: "www.example.com."},
		{Domain: "example.com", Entry: "api.example.com"},
	}

	tests := map[string]struct {
		mode     Mode
		value    string
		expected []string
	}{
		"del-a": {
			mode:  DelA,
			value: "1.2.3.4",
			expected: []string{
				"del_address_record example.com www.example.com 1.2.3.4",
				"del_address_record example.com api.example.com 1.2.3.4",
			},
		},
		"add-a": {
			mode:  AddA,
			value: "1.2.3.4",
			expected: []string{
				"add_address_record example.com www.example.com 1.2.3.4",
				"add_address_record example.com api.example.com 1.2.3.4",
			},
		},
		"add-aaaa": {
			mode:  AddAAAA,
			value: "2001:db8::1",
			expected: []string{
				"add_aaaa_record example.com www.example.com 2001:db8::1",
				"add_aaaa_record example.com api.example.com 2001:db8::1",
			},
		},
		"del-aaaa": {
			mode:  DelAAAA,
			value: "::1",
			expected: []string{
				"del_aaaa_record example.com www.example.com ::1",
				"del_aaaa_record example.com api.example.com ::1",
			},
		},
		"add-cname": {
			mode:  AddCNAME,
			value: "lb.example.net.",
			expected: []string{
				"add_cname_record example.com www.example.com lb.example.net.",
				"add_cname_record example.com api.example.com lb.example.net.",
			},
		},
		"del-cname": {
			mode:  DelCNAME,
			value: "lb.example.net.",
			expected: []string{
				"del_cname_record example.com www.example.com lb.example.net.",
				"del_cname_record example.com api.example.com lb.example.net.",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Render(matches, test.mode, test.value)
			if !reflect.DeepEqual(got, test.expected) {
				t.Fatalf("expected %v; got %v", test.expected, got)
			}
		})
	}
}

func Test_Render_Empty(t *testing.T) {
	got := Render(nil, DelA, "1.2.3.4")
	if len(got) != 0 {
		t.Fatalf("expected no lines; got %v", got)
	}
}

func Test_Line_String(t *testing.T) {
	l := Line{
		Domain: "example.com",
		Entry:  "www.example.com..",
		Mode:   DelA,
		Value:  "1.2.3.4",
	}

	// Only the root label terminator is removed.
	expected := "del_address_record example.com www.example.com. 1.2.3.4"
	if l.String() != expected {
		t.Fatalf("expected %q; got %q", expected, l.String())
	}
}

func Test_SelectMode(t *testing.T) {
	v4 := target(t, "1.2.3.4")
	v6 := target(t, "2001:db8::1")
	v6x := target(t, "2001:0db8:0000:0000:0000:0000:0000:0001")
	v4z := target(t, "010.001.002.003")

	tests := map[string]struct {
		action Action
		addr   *Target
		cname  string
		mode   Mode
		value  string
		error  bool
	}{
		"add-ipv4": {
			action: ADD,
			addr:   &v4,
			mode:   AddA,
			value:  "1.2.3.4",
		},
		"del-ipv4": {
			action: DEL,
			addr:   &v4,
			mode:   DelA,
			value:  "1.2.3.4",
		},
		"add-ipv6": {
			action: ADD,
			addr:   &v6,
			mode:   AddAAAA,
			value:  "2001:db8::1",
		},
		"del-ipv6": {
			action: DEL,
			addr:   &v6,
			mode:   DelAAAA,
			value:  "2001:db8::1",
		},
		"del-ipv6-expanded-input": {
			action: DEL,
			addr:   &v6x,
			mode:   DelAAAA,
			value:  "2001:db8::1",
		},
		"add-ipv4-leading-zeros": {
			action: ADD,
			addr:   &v4z,
			mode:   AddA,
			value:  "10.1.2.3",
		},
		"add-cname": {
			action: ADD,
			cname:  "www.example.com.",
			mode:   AddCNAME,
			value:  "www.example.com.",
		},
		"del-cname": {
			action: DEL,
			cname:  "www.example.com.",
			mode:   DelCNAME,
			value:  "www.example.com.",
		},
		"neither": {
			action: DEL,
			error:  true,
		},
		"both": {
			action: DEL,
			addr:   &v4,
			cname:  "www.example.com.",
			error:  true,
		},
		"unparsed-address": {
			action: ADD,
			addr:   &Target{},
			error:  true,
		},
		"bad-action": {
			action: "update",
			addr:   &v4,
			error:  true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			mode, value, err := SelectMode(test.action, test.addr, test.cname)
			if err != nil {
				if !test.error {
					t.Fatalf("unexpected error: %v", err)
				}

				if !errors.Is(err, ErrConfig) {
					t.Fatalf("expected config error; got %v", err)
				}

				return
			}

			if test.error {
				t.Fatalf("expected error; got %s", mode)
			}

			if mode != test.mode || value != test.value {
				t.Fatalf("expected %s %s; got %s %s", test.mode, test.value, mode, value)
			}
		})
	}
}

func Test_ParseAction(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Action
		error    bool
	}{
		"add":       {input: "add", expected: ADD},
		"del":       {input: "del", expected: DEL},
		"uppercase": {input: "DEL", expected: DEL},
		"empty":     {input: "", error: true},
		"unknown":   {input: "delete", error: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := ParseAction(test.input)
			if (err != nil) != test.error {
				t.Fatalf("unexpected error state: %v", err)
			}

			if a != test.expected {
				t.Fatalf("expected %q; got %q", test.expected, a)
			}
		})
	}
}

func Test_ModeFromCommand(t *testing.T) {
	for _, m := range []Mode{AddA, DelA, AddAAAA, DelAAAA, AddCNAME, DelCNAME} {
		got, ok := ModeFromCommand(m.String())
		if !ok || got != m {
			t.Fatalf("expected %s to map back to itself; got %s", m, got)
		}
	}

	if _, ok := ModeFromCommand("update_address_record"); ok {
		t.Fatal("expected unknown command to be rejected")
	}
}
