package types

import (
	"io/fs"
)

// FS is the filesystem surface required for link operations. The OS
// implementation lives in pkg/filesystem; tests use an in-memory one.
type FS interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks; it is how a dangling symlink is
	// still seen as an existing directory entry.
	Lstat(name string) (fs.FileInfo, error)

	// Symlink creates newname as a symbolic link whose content is
	// oldname, verbatim.
	Symlink(oldname, newname string) error

	// Link creates newname as a hard link to oldname.
	Link(oldname, newname string) error

	Readlink(name string) (string, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
