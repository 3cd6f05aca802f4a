package cmd

import (
	"strings"
	"testing"
)

func TestDiscardSession_Confirmed(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	d.Stdin = strings.NewReader("y\n")
	SetDeps(d)
	defer ResetDeps()

	addEntry("9h30 statistics")

	stdout.Reset()
	discardSession()

	if !strings.Contains(stdout.String(), "Discarded 1 entry") {
		t.Errorf("stdout = %q, expected discard message", stdout.String())
	}

	count, err := d.Services.Entry.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Session has %d entries after discard, expected 0", count)
	}
}

func TestDiscardSession_Cancelled(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	d.Stdin = strings.NewReader("n\n")
	SetDeps(d)
	defer ResetDeps()

	addEntry("9h30 statistics")

	stdout.Reset()
	discardSession()

	if !strings.Contains(stdout.String(), "Discard cancelled") {
		t.Errorf("stdout = %q, expected cancel message", stdout.String())
	}

	count, err := d.Services.Entry.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Session has %d entries after cancelled discard, expected 1", count)
	}
}

func TestDiscardSession_YesFlag(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	discardYesFlag = true
	defer func() { discardYesFlag = false }()

	addEntry("9h30 statistics")
	addEntry("14:00 lunch")

	stdout.Reset()
	discardSession()

	if !strings.Contains(stdout.String(), "Discarded 2 entries") {
		t.Errorf("stdout = %q, expected discard message", stdout.String())
	}
}

func TestDiscardSession_EmptySession(t *testing.T) {
	d, stdout, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	discardSession()

	if *exitCode != -1 {
		t.Errorf("Exit code = %d, expected no exit", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No entries in the current session") {
		t.Errorf("stdout = %q, expected empty session message", stdout.String())
	}
}
