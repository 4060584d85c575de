package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used when writing YAML.
const yamlIndent = 2

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
// Unknown fields are rejected so typos surface as errors.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Kinds == nil {
		cfg.Kinds = make(map[string]KindConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Extensions = cloneStrings(c.Extensions)
	clone.Ignore = cloneStrings(c.Ignore)
	clone.DisableKinds = cloneStrings(c.DisableKinds)
	if c.FollowSymlinks != nil {
		follow := *c.FollowSymlinks
		clone.FollowSymlinks = &follow
	}

	if c.Kinds != nil {
		clone.Kinds = make(map[string]KindConfig, len(c.Kinds))
		for k, v := range c.Kinds {
			clone.Kinds[k] = v.clone()
		}
	}

	return &clone
}

// clone creates a deep copy of a KindConfig.
func (kc KindConfig) clone() KindConfig {
	clone := KindConfig{}

	if kc.Enabled != nil {
		enabled := *kc.Enabled
		clone.Enabled = &enabled
	}

	if kc.Severity != nil {
		severity := *kc.Severity
		clone.Severity = &severity
	}

	return clone
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
