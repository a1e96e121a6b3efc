package core

import (
	"fmt"

	"github.com/arthur-debert/lnk/pkg/types"
)

// SimpleBackupPath appends the suffix to the destination verbatim.
func SimpleBackupPath(dest, suffix string) string {
	return dest + suffix
}

// NumberedBackupPath returns the first free slot in the ".~N~" series,
// probing the filesystem from 1 upward.
func NumberedBackupPath(fsys types.FS, dest string) string {
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.~%d~", dest, i)
		if !entryExists(fsys, candidate) {
			return candidate
		}
	}
}

// ExistingBackupPath continues a numbered series once one has been
// started (".~1~" present), otherwise falls back to a simple backup.
func ExistingBackupPath(fsys types.FS, dest, suffix string) string {
	if entryExists(fsys, dest+".~1~") {
		return NumberedBackupPath(fsys, dest)
	}
	return SimpleBackupPath(dest, suffix)
}

// backupPath selects the backup name for dest per the configured mode.
// Returns "" when backups are disabled.
func backupPath(fsys types.FS, dest string, opts types.LinkOptions) string {
	switch opts.Backup {
	case types.BackupSimple:
		return SimpleBackupPath(dest, opts.Suffix)
	case types.BackupNumbered:
		return NumberedBackupPath(fsys, dest)
	case types.BackupExisting:
		return ExistingBackupPath(fsys, dest, opts.Suffix)
	default:
		return ""
	}
}

// entryExists reports whether a directory entry is present at path.
// Lstat is deliberate: a dangling symlink is still an entry, and a
// following Stat would miss it.
func entryExists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}
