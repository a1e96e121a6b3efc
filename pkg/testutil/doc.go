// Package testutil provides test doubles for lnk, chiefly MemoryFS, an
// in-memory types.FS with hard-link node sharing and per-path error
// injection. Integration tests that need real link semantics use
// filesystem.NewOS with t.TempDir instead.
package testutil
