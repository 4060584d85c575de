package configloader

import (
	"maps"

	"github.com/yaklabco/tagcheck/pkg/config"
)

// merge layers override on top of base and returns a new Config. Zero
// scalars and nil slices in override leave base untouched; a non-nil slice
// replaces the base slice. Kind settings merge field by field.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := *base
	setIf(&out.Encoding, override.Encoding)
	setIf(&out.Markdown, override.Markdown)
	setIf(&out.Format, override.Format)
	setIf(&out.Color, override.Color)
	setIf(&out.Jobs, override.Jobs)

	if override.Extensions != nil {
		out.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		out.Ignore = override.Ignore
	}
	if override.FollowSymlinks != nil {
		out.FollowSymlinks = override.FollowSymlinks
	}
	if override.DisableKinds != nil {
		out.DisableKinds = override.DisableKinds
	}

	out.Kinds = maps.Clone(base.Kinds)
	if out.Kinds == nil {
		out.Kinds = make(map[string]config.KindConfig, len(override.Kinds))
	}
	for name, kc := range override.Kinds {
		merged := out.Kinds[name]
		if kc.Enabled != nil {
			merged.Enabled = kc.Enabled
		}
		if kc.Severity != nil {
			merged.Severity = kc.Severity
		}
		out.Kinds[name] = merged
	}

	return &out
}

func setIf[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// MergeAll merges configs left to right, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var out *config.Config
	for _, cfg := range configs {
		out = merge(out, cfg)
	}
	return out
}
