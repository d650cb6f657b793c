// Package config assembles the run configuration from action-style
// environment inputs, an optional YAML file, and command-line flags.
// Components receive the resulting struct; nothing else reads the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxItems is used when the configured maximum is unset,
// non-numeric, or not positive.
const DefaultMaxItems = 5

// Event sources.
const (
	SourceREST    = "rest"
	SourceGraphQL = "graphql"
)

// Config is the full run configuration.
type Config struct {
	Token      string            `yaml:"-"`
	Username   string            `yaml:"username"`
	MaxItems   int               `yaml:"max_items"`
	Templates  map[string]string `yaml:"templates"`
	ReadmePath string            `yaml:"readme"`
	Timezone   string            `yaml:"timezone"`
	Source     string            `yaml:"source"`
}

// FromEnv builds a Config from the GitHub Action input environment.
// INPUT_* names match the original action inputs; GITHUB_TOKEN is the
// fallback for the token.
func FromEnv() (*Config, error) {
	token := os.Getenv("INPUT_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	templates, err := ParseTemplates(os.Getenv("INPUT_EVENT_TEMPLATES"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Token:      token,
		Username:   os.Getenv("INPUT_USERNAME"),
		MaxItems:   ParseMaxItems(os.Getenv("INPUT_MAX_ITEMS")),
		Templates:  templates,
		ReadmePath: os.Getenv("INPUT_README_PATH"),
		Timezone:   os.Getenv("INPUT_TIMEZONE"),
		Source:     SourceREST,
	}, nil
}

// LoadFile overlays the YAML config at path onto c. File values win over
// environment values; flags are applied by the caller afterwards.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.Username != "" {
		c.Username = file.Username
	}
	if file.MaxItems > 0 {
		c.MaxItems = file.MaxItems
	}
	if len(file.Templates) > 0 {
		c.Templates = file.Templates
	}
	if file.ReadmePath != "" {
		c.ReadmePath = file.ReadmePath
	}
	if file.Timezone != "" {
		c.Timezone = file.Timezone
	}
	if file.Source != "" {
		c.Source = file.Source
	}
	return nil
}

// Validate fails fast on inputs the run cannot proceed without. Nothing is
// fetched or written when it returns an error.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("missing github token")
	}
	if c.Username == "" {
		return fmt.Errorf("missing username")
	}
	if c.Source != SourceREST && c.Source != SourceGraphQL {
		return fmt.Errorf("unknown event source %q (want %q or %q)", c.Source, SourceREST, SourceGraphQL)
	}
	if c.ReadmePath == "" {
		return fmt.Errorf("missing readme path")
	}
	return nil
}

// ResolveReadmePath anchors a relative readme path at GITHUB_WORKSPACE
// when set, else the working directory.
func (c *Config) ResolveReadmePath() string {
	if filepath.IsAbs(c.ReadmePath) {
		return c.ReadmePath
	}
	base := os.Getenv("GITHUB_WORKSPACE")
	if base == "" {
		base, _ = os.Getwd()
	}
	return filepath.Join(base, c.ReadmePath)
}

// ParseTemplates decodes the event-template map from its JSON form. An
// empty input is an empty map; invalid JSON is fatal before any network
// call.
func ParseTemplates(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("event_templates is not valid JSON: %w", err)
	}
	return m, nil
}

// ParseMaxItems interprets the maximum item count input. Anything that is
// not a positive integer means "use the default", never zero items.
func ParseMaxItems(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultMaxItems
	}
	return n
}
