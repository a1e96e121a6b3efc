// Package types holds the shared data model for lnk: link options,
// resolved pairs, per-pair results, and the filesystem interface the
// core operates against.
package types
