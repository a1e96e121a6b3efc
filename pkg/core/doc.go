// Package core implements lnk's decision logic: the invocation-form
// resolver, the per-pair link transaction with its overwrite and backup
// policy, and the sequential run loop that aggregates outcomes.
package core
