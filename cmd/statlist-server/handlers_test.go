package main

import (
	"strings"
	"testing"
)

func TestPing(t *testing.T) {
	app := newTestApp(t)

	expect(t, app, "PING", "+PONG\r\n")
	expect(t, app, "PING hello", "$5\r\nhello\r\n")

	if got := run(t, app, "PING one two"); !strings.HasPrefix(got, "-ERR wrong number of arguments") {
		t.Errorf("PING with two args: got %q, want arity error", got)
	}
}

func TestDelAndExists(t *testing.T) {
	app := newTestApp(t)

	expect(t, app, "EXISTS jobs", ":0\r\n")
	run(t, app, "L.PUSHBACK jobs 1")
	expect(t, app, "EXISTS jobs", ":1\r\n")
	expect(t, app, "DEL jobs", ":1\r\n")
	expect(t, app, "EXISTS jobs", ":0\r\n")
}

func TestInfo(t *testing.T) {
	app := newTestApp(t)
	run(t, app, "L.PUSHBACK jobs 1 2 3")
	run(t, app, "NOSUCHCMD")

	got := run(t, app, "INFO")
	if !strings.HasPrefix(got, "$") {
		t.Fatalf("INFO reply is not a bulk string: %q", got)
	}
	for _, want := range []string{
		"# Server",
		"uptime_seconds:",
		"# Stats",
		"total_commands:",
		"unknown_commands:1",
		"lists:1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("INFO missing %q in %q", want, got)
		}
	}
}

func TestCommandNamesAreCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	expect(t, app, "l.pushback jobs 5", ":1\r\n")
	expect(t, app, "l.size jobs", ":1\r\n")
	expect(t, app, "ping", "+PONG\r\n")
}
