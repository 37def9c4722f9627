package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func Test_output(t *testing.T) {
	tests := map[string]struct {
		lines  []string
		stdout string
		stderr string
	}{
		"lines": {
			lines:  []string{"www.example.com.", "api.example.com."},
			stdout: "www.example.com.\napi.example.com.\n",
		},
		"no-results": {
			stderr: "no results\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := output(&stdout, &stderr, test.lines)
			if err != nil {
				t.Fatal(err)
			}

			if stdout.String() != test.stdout {
				t.Errorf("expected stdout %q; got %q", test.stdout, stdout.String())
			}

			if stderr.String() != test.stderr {
				t.Errorf("expected stderr %q; got %q", test.stderr, stderr.String())
			}
		})
	}
}

func Test_root_Execute(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{
		"-o", "del",
		"-f", "testdata/example.com.zone,testdata/broken.zone,testdata/example.org.zone",
		"192.0.2.10",
	})
	defer root.SetArgs(nil)

	err := root.ExecuteContext(ctx)
	if !errors.Is(err, ErrZoneLoad) {
		t.Fatalf("expected the broken zone to fail the run; got %v", err)
	}

	expected := strings.Join([]string{
		"del_address_record example.com www.example.com 192.0.2.10",
		"del_address_record example.com api.example.com 192.0.2.10",
		"del_address_record example.org www.example.org 192.0.2.10",
	}, "\n") + "\n"

	if stdout.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, stdout.String())
	}
}

// warnLogger records the messages passed to Warnw.
type warnLogger struct {
	NOOPLogger
	warnings []string
}

func (w *warnLogger) Warnw(msg string, _ ...interface{}) {
	w.warnings = append(w.warnings, msg)
}

func Test_warnIgnored(t *testing.T) {
	tests := map[string]struct {
		cfg      Config
		target   string
		expected []string
	}{
		"nothing-ignored": {
			cfg:    Config{Action: "del", CNAME: "lb.example.net."},
			target: "192.0.2.10",
		},
		"aaaa-with-ipv4": {
			cfg:    Config{AAAA: true},
			target: "192.0.2.10",
			expected: []string{
				"ignoring --AAAA; target is not an IPv6 address",
			},
		},
		"aaaa-with-ipv6": {
			cfg:    Config{AAAA: true},
			target: "2001:db8::10",
		},
		"cname-without-action": {
			cfg:    Config{CNAME: "lb.example.net."},
			target: "192.0.2.10",
			expected: []string{
				"ignoring --cname; no script action was given with -o",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			logger := &warnLogger{}
			cfg := test.cfg

			warnIgnored(logger, &cfg, target(t, test.target))

			if strings.Join(logger.warnings, "\n") != strings.Join(test.expected, "\n") {
				t.Fatalf("expected warnings %v; got %v", test.expected, logger.warnings)
			}
		})
	}
}
