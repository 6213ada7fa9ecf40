package mirror

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
)

// DefaultGithubDir is the destination subdirectory that receives the
// template tree.
const DefaultGithubDir = ".github"

// DefaultExcludes lists subpaths that are never copied and never
// deleted at a destination. Workflow definitions are owned by each
// repository, not by the template source.
var DefaultExcludes = []string{"workflows"}

// RunOptions configures a sync run across a list of targets
type RunOptions struct {
	// SourceDir is the canonical template root; it must exist.
	SourceDir string
	// GithubDir is the destination subdirectory under each target,
	// DefaultGithubDir when empty.
	GithubDir string
	// Exclude overrides DefaultExcludes when non-nil.
	Exclude []string
	// DryRun plans every target without writing anything.
	DryRun bool
}

// TargetResult records the outcome for a single target directory
type TargetResult struct {
	Target  string
	Skipped bool
	// Err carries the non-fatal target_missing error for skipped
	// targets and is nil otherwise.
	Err  *SyncError
	Plan *Plan
}

// RunResult aggregates per-target outcomes for a full run
type RunResult struct {
	Results []TargetResult
}

// Synced returns the number of targets that were processed
func (r *RunResult) Synced() int {
	n := 0
	for _, res := range r.Results {
		if !res.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of targets that were missing on disk
func (r *RunResult) Skipped() int {
	return len(r.Results) - r.Synced()
}

// Run mirrors the source template directory into every target in
// order. A missing target directory is recorded as skipped and does not
// fail the run; any filesystem failure mid-mirror aborts the run
// immediately with the underlying cause.
func Run(opts RunOptions, targets []string) (*RunResult, error) {
	if len(targets) == 0 {
		return nil, NewSyncError(ErrorTypeConfig, "no target directories supplied", nil)
	}

	info, err := os.Stat(opts.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, NewSyncError(ErrorTypeSourceMissing,
			fmt.Sprintf("template directory not found: %s", opts.SourceDir), err)
	}

	githubDir := opts.GithubDir
	if githubDir == "" {
		githubDir = DefaultGithubDir
	}
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExcludes
	}

	result := &RunResult{}
	for _, target := range targets {
		targetInfo, err := os.Stat(target)
		if err != nil || !targetInfo.IsDir() {
			skipErr := NewSyncError(ErrorTypeTargetMissing,
				fmt.Sprintf("target directory not found: %s", target), err)
			result.Results = append(result.Results, TargetResult{Target: target, Skipped: true, Err: skipErr})
			continue
		}

		destDir := filepath.Join(target, githubDir)
		syncer := NewSyncer(osfs.New(opts.SourceDir), osfs.New(destDir), exclude...)

		var plan *Plan
		if opts.DryRun {
			plan, err = syncer.Plan()
		} else {
			if err := os.MkdirAll(destDir, 0755); err != nil {
				return nil, WrapIOError(err, destDir)
			}
			plan, err = syncer.Sync()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to sync %s: %w", target, err)
		}

		result.Results = append(result.Results, TargetResult{Target: target, Plan: plan})
	}

	return result, nil
}
