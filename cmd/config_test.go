package cmd

import (
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	out := stdout.String()
	if !strings.Contains(out, "Status:            No config file (using defaults)") {
		t.Errorf("stdout = %q, expected defaults status", out)
	}
	if !strings.Contains(out, "Transcriber Model: whisper-1") {
		t.Errorf("stdout = %q, expected default model", out)
	}
	if !strings.Contains(out, "Theme:             (default)") {
		t.Errorf("stdout = %q, expected default theme", out)
	}
	if !strings.Contains(out, "daylog config init") {
		t.Errorf("stdout = %q, expected init tip", out)
	}
}

func TestInitConfig(t *testing.T) {
	d, stdout, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	initConfig()

	if *exitCode != -1 {
		t.Fatalf("Exit called with %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Created config file:") {
		t.Errorf("stdout = %q, expected creation message", stdout.String())
	}

	// A second init refuses to overwrite
	initConfig()
	if *exitCode != 1 {
		t.Errorf("Exit code = %d after second init, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("stderr = %q, expected overwrite refusal", stderr.String())
	}
}
