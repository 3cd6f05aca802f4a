package cmd

import (
	"strings"
	"testing"

	"github.com/xolan/daylog/internal/storage"
)

func TestRestoreFromBackup(t *testing.T) {
	d, stdout, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	// Two saves so the first one ends up in a backup
	addEntry("9h30 statistics")
	saveSession()
	addEntry("10h00 emails")
	saveSession()

	stdout.Reset()
	restoreFromBackup([]string{})

	if *exitCode != -1 {
		t.Fatalf("Exit called with %d, stderr: %s", *exitCode, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "Available backups:") {
		t.Errorf("stdout = %q, expected backup listing", out)
	}
	if !strings.Contains(out, "Successfully restored from backup 1") {
		t.Errorf("stdout = %q, expected restore confirmation", out)
	}

	records, err := storage.ReadRecords(d.Services.Log.StoragePath())
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Activity log has %d records after restore, expected 1", len(records))
	}
}

func TestRestoreFromBackup_NoBackups(t *testing.T) {
	d, stdout, _, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	restoreFromBackup([]string{})

	if *exitCode != 1 {
		t.Errorf("Exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No backups available") {
		t.Errorf("stdout = %q, expected no backups message", stdout.String())
	}
}

func TestRestoreFromBackup_InvalidNumber(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	addEntry("9h30 statistics")
	saveSession()
	addEntry("10h00 emails")
	saveSession()

	restoreFromBackup([]string{"nope"})
	if *exitCode != 1 {
		t.Errorf("Exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid backup number") {
		t.Errorf("stderr = %q, expected invalid number error", stderr.String())
	}

	stderr.Reset()
	restoreFromBackup([]string{"9"})
	if !strings.Contains(stderr.String(), "Backup number must be between") {
		t.Errorf("stderr = %q, expected range error", stderr.String())
	}

	stderr.Reset()
	restoreFromBackup([]string{"3"})
	if !strings.Contains(stderr.String(), "Backup 3 does not exist") {
		t.Errorf("stderr = %q, expected missing backup error", stderr.String())
	}
}
