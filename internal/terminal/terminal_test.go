package terminal

import (
	"flag"
	"strings"
	"testing"

	"sphere-tracer/internal/commands"
	"sphere-tracer/internal/logger"
)

func TestSubmit_RunsCommands(t *testing.T) {
	log := logger.NewAt("")
	reg := commands.NewRegistry()
	fs := flag.NewFlagSet("variant", flag.ContinueOnError)
	name := fs.String("name", "", "")
	var ran string
	reg.Register("variant", "switch", fs, func() error {
		ran = *name
		return nil
	})
	term := New(log, reg)

	term.Submit("cmd variant -name llama")
	if ran != "llama" {
		t.Errorf("command not run, got %q", ran)
	}

	term.Submit("hello")
	term.Submit("cmd nope")
	lines := log.Lines()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "not a command") {
		t.Error("plain text not reported")
	}
	if !strings.Contains(joined, "unknown command: nope") {
		t.Error("unknown command error not logged")
	}
	if term.IsOpen() {
		t.Error("console should start closed")
	}
}

func TestStripTimestamp(t *testing.T) {
	if got := stripTimestamp("[2026-10-17 12:00:00] > cmd pause"); got != "> cmd pause" {
		t.Errorf("got %q", got)
	}
	if got := stripTimestamp("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}

func TestClip(t *testing.T) {
	long := strings.Repeat("x", 100) + "END"
	got := clip(long)
	if len(got) != maxLineChars || !strings.HasSuffix(got, "END") || !strings.HasPrefix(got, "...") {
		t.Errorf("got %q (len %d)", got, len(got))
	}
	if clip("short") != "short" {
		t.Error("short line changed")
	}
}
