// Package mirror implements directory mirroring between a canonical
// template tree and repository checkouts. It diffs a source filesystem
// against a destination, produces a plan of file changes, and applies
// that plan, honoring exclusion rules that protect destination-side
// content from being created, modified, or deleted.
//
// The package includes:
// - Syncer for single-destination plan/apply mirroring
// - Run for processing an ordered list of target repositories
// - Structured error types for sync failures
package mirror
