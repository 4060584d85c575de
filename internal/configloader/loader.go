// Package configloader resolves the effective tagcheck configuration from
// config files, TAGCHECK_* environment variables and command-line flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/fsutil"
)

// ErrInvalidConfig indicates a configuration file, environment variable or
// flag combination that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOptions selects the configuration sources for Load.
type LoadOptions struct {
	WorkingDir   string // project config search start; defaults to the current directory
	ExplicitPath string // --config

	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds flag values and overrides every other source.
	CLIConfig *config.Config
}

// LoadResult is the merged configuration plus where it came from.
type LoadResult struct {
	Config     *config.Config
	Paths      *ConfigPaths
	LoadedFrom []string // files merged, lowest precedence first
	Warnings   []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (TAGCHECK_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.tagcheck.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/tagcheck/config.yaml)
//  6. Defaults
//
// Every returned error wraps ErrInvalidConfig.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: get working directory: %w", ErrInvalidConfig, err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: discover paths: %w", ErrInvalidConfig, err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	sources := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, src := range sources {
		if src.skip || src.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(ctx, src.path)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s config %s: %w", ErrInvalidConfig, src.name, src.path, err)
		}
		if validation := ValidateWithFile(fileCfg, src.path); !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, src.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("%w: load environment: %w", ErrInvalidConfig, err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
