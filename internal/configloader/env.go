package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/tagcheck/pkg/config"
)

// EnvPrefix is prepended to every environment variable tagcheck reads.
const EnvPrefix = "TAGCHECK_"

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string

	apply func(cfg *config.Config, value string) error
}

// envVars lists the supported variables, sorted by name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []EnvVar{
	{
		Name:        EnvPrefix + "DISABLE",
		Description: "comma-separated diagnostic kinds to suppress",
		apply:       func(cfg *config.Config, v string) error { cfg.DisableKinds = splitList(v); return nil },
	},
	{
		Name:        EnvPrefix + "ENCODING",
		Description: "encoding for files without a byte order mark",
		apply:       func(cfg *config.Config, v string) error { cfg.Encoding = v; return nil },
	},
	{
		Name:        EnvPrefix + "EXTENSIONS",
		Description: "comma-separated extensions picked up in directories",
		apply:       func(cfg *config.Config, v string) error { cfg.Extensions = splitList(v); return nil },
	},
	{
		Name:        EnvPrefix + "FOLLOW_SYMLINKS",
		Description: "follow symlinked directories: true or false",
		apply: func(cfg *config.Config, v string) error {
			follow, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("not a boolean: %q", v)
			}
			cfg.FollowSymlinks = &follow
			return nil
		},
	},
	{
		Name:        EnvPrefix + "FORMAT",
		Description: "output format: text, json, sarif, or summary",
		apply:       func(cfg *config.Config, v string) error { cfg.Format = config.OutputFormat(v); return nil },
	},
	{
		Name:        EnvPrefix + "IGNORE",
		Description: "comma-separated glob patterns to ignore",
		apply:       func(cfg *config.Config, v string) error { cfg.Ignore = splitList(v); return nil },
	},
	{
		Name:        EnvPrefix + "JOBS",
		Description: "number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, v string) error {
			jobs, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("not an integer: %q", v)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	{
		Name:        EnvPrefix + "MARKDOWN",
		Description: "Markdown handling: auto, always, or never",
		apply:       func(cfg *config.Config, v string) error { cfg.Markdown = v; return nil },
	},
}

// LoadFromEnv applies TAGCHECK_* environment variables to cfg.
// Unset and empty variables leave cfg unchanged.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for _, ev := range envVars {
		value := os.Getenv(ev.Name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", ev.Name, err)
		}
	}
	return nil
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	return append([]EnvVar(nil), envVars...)
}

// splitList parses a comma-separated value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
