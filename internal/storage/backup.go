package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the path to a backup file with the given rotation number.
// The rotation number n should be between 1 and MaxBackupCount (inclusive).
// Backup files are named with the format: activities.csv.bak.N where N is the
// rotation number. Lower numbers are more recent (e.g., .bak.1 is the most
// recent backup).
func GetBackupPath(n int) (string, error) {
	return GetBackupPathForStorage("", n)
}

// GetBackupPathForStorage returns the backup path for a specific storage file.
// If storagePath is empty, uses GetStoragePath() to get the default storage location.
func GetBackupPathForStorage(storagePath string, n int) (string, error) {
	if storagePath == "" {
		var err error
		storagePath, err = GetStoragePath()
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n), nil
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the oldest .bak.3
// if it exists. This ensures only MaxBackupCount backups are kept.
func rotateBackups(storagePath string) error {
	// Delete the oldest backup to make room
	oldestPath, err := GetBackupPathForStorage(storagePath, MaxBackupCount)
	if err != nil {
		return err
	}
	if err := os.Remove(oldestPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	// Rotate backups from MaxBackupCount-1 down to 1
	for i := MaxBackupCount - 1; i >= 1; i-- {
		currentPath, err := GetBackupPathForStorage(storagePath, i)
		if err != nil {
			return err
		}

		nextPath, err := GetBackupPathForStorage(storagePath, i+1)
		if err != nil {
			return err
		}

		if err := os.Rename(currentPath, nextPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup creates a backup of the activity log before a save rewrites it.
// It rotates existing backups and copies the current log file to .bak.1.
// If the log file doesn't exist, no backup is created and no error is returned.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			// No file to backup, return without error
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	backupPath, err := GetBackupPathForStorage(storagePath, 1)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(storagePath)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackupsForStorage returns available backup files for the given storage
// file, sorted by recency. .bak.1 is the most recent backup, .bak.3 the
// oldest. Returns an empty slice if no backups exist.
func ListBackupsForStorage(storagePath string) ([]BackupInfo, error) {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		backupPath, err := GetBackupPathForStorage(storagePath, i)
		if err != nil {
			return nil, err
		}

		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{
				Number: i,
				Path:   backupPath,
			})
		}
	}

	return backups, nil
}

// RestoreBackup restores a backup file to the main activity log.
// backupNum specifies which backup to restore (1 is most recent, 3 is oldest).
// Creates a backup of the current state before restoring for safety.
// Returns an error if the backup number is invalid or the backup file
// doesn't exist.
func RestoreBackup(storagePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath, err := GetBackupPathForStorage(storagePath, backupNum)
	if err != nil {
		return err
	}

	// Read the backup contents first: creating the safety backup below
	// rotates the backup files, which would shift this path to a
	// different (newer) backup.
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	// Create a backup of the current state before restoring (safety measure)
	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	return os.WriteFile(storagePath, data, 0644)
}
