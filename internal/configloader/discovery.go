package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ConfigPaths holds the configuration files found for one run.
// An empty field means no such file exists.
type ConfigPaths struct {
	User     string
	Project  string
	Explicit string
}

// ProjectConfigFiles are the project config names, most preferred first.
// The first entry is the name `tagcheck init` writes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".tagcheck.yml",
	".tagcheck.yaml",
	"tagcheck.yml",
	"tagcheck.yaml",
}

//nolint:gochecknoglobals // Read-only lookup table.
var (
	userConfigFiles = []string{"config.yaml", "config.yml"}
	vcsMarkers      = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the user config under UserConfigDir and the nearest
// project config at or above workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		User:    firstFile(UserConfigDir(), userConfigFiles),
		Project: project,
	}, nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/tagcheck, falling back to
// ~/.config/tagcheck. It returns "" when neither can be determined.
func UserConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tagcheck")
}

// FindProjectConfig walks from startDir towards the filesystem root and
// returns the first project config file it meets. The walk ends without a
// result after checking a VCS root or the user's home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstFile(dir, ProjectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || isVCSRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	idx := slices.IndexFunc(names, func(name string) bool {
		info, err := os.Stat(filepath.Join(dir, name))
		return err == nil && info.Mode().IsRegular()
	})
	if idx < 0 {
		return ""
	}
	return filepath.Join(dir, names[idx])
}

func isVCSRoot(dir string) bool {
	return slices.ContainsFunc(vcsMarkers, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}
