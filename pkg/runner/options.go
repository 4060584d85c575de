// Package runner checks many files concurrently and collects the outcomes.
package runner

import "github.com/yaklabco/tagcheck/pkg/config"

// Options controls discovery and checking for one run.
type Options struct {
	// Paths are the files and directories to check; "." when empty.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore patterns.
	// The process working directory is used when empty.
	WorkingDir string

	// Extensions select files while walking directories. Files named in
	// Paths are checked whatever their extension.
	Extensions []string

	ExcludeGlobs []string

	// FollowSymlinks descends into symlinked directories. A directory
	// reached twice, through a loop or two links, is walked once.
	FollowSymlinks bool

	// Jobs bounds the worker count; NumCPU when zero or negative.
	Jobs int
}

// OptionsFromConfig builds Options for paths from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string, workDir string) Options {
	opts := Options{Paths: paths, WorkingDir: workDir}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.Jobs
		opts.FollowSymlinks = cfg.FollowsSymlinks()
	}
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
