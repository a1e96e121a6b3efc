// Package filesystem provides the OS-backed implementation of types.FS.
// Platform differences in link creation live behind os.Link/os.Symlink;
// nothing in this package or its callers branches on GOOS.
package filesystem
