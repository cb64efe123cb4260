// Package config loads and validates the lbpc configuration file.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/lbpc/internal/errors"
	"git.home.luguber.info/inful/lbpc/internal/transpile"
)

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = "lbpc.yaml"

// Config represents the application configuration.
type Config struct {
	Indent IndentConfig `yaml:"indent"`
	Output OutputConfig `yaml:"output"`
}

// IndentConfig controls how indentation levels render in the output.
type IndentConfig struct {
	Type string `yaml:"type"` // "spaces" or "tabs"
	Size int    `yaml:"size"` // spaces per level; ignored for tabs
}

// OutputConfig controls how output paths are derived.
type OutputConfig struct {
	Extension string `yaml:"extension"` // default extension for derived output paths
	Directory string `yaml:"directory"` // optional directory for derived output paths
}

// Default returns the configuration used when no file is present: 4-space
// indentation and a .py output extension.
func Default() *Config {
	return &Config{
		Indent: IndentConfig{Type: string(transpile.IndentSpaces), Size: 4},
		Output: OutputConfig{Extension: ".py"},
	}
}

// Load loads configuration from configPath. Environment files are loaded
// first and environment references in the YAML are expanded. When the file is
// missing and explicit is false (the path is the untouched default), the
// defaults are returned; an explicitly requested missing file is a config
// error.
func Load(configPath string, explicit bool) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if explicit {
			return nil, errors.Newf(errors.KindConfig, "configuration file not found: %s", configPath)
		}
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindConfig, "read config file")
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.Wrap(err, errors.KindConfig, "unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Indent.Type == "" {
		c.Indent.Type = string(transpile.IndentSpaces)
	}
	if c.Indent.Size == 0 {
		c.Indent.Size = 4
	}
	if c.Output.Extension == "" {
		c.Output.Extension = ".py"
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}
}

// Validate rejects configurations the renderer would refuse lazily, so the
// CLI reports them before any file is touched.
func (c *Config) Validate() error {
	switch transpile.IndentType(c.Indent.Type) {
	case transpile.IndentSpaces, transpile.IndentTabs:
	default:
		return errors.InvalidIndentConfig(c.Indent.Type)
	}
	if c.Indent.Size <= 0 {
		return errors.Newf(errors.KindConfig, "indent.size must be positive, got %d", c.Indent.Size)
	}
	return nil
}

// Policy converts the indent configuration into the core rendering policy.
func (c *Config) Policy() transpile.Policy {
	return transpile.Policy{Type: transpile.IndentType(c.Indent.Type), Size: c.Indent.Size}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.Newf(errors.KindConfig, "configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	content := `# lbpc configuration
indent:
  type: spaces    # spaces | tabs
  size: 4         # spaces per indentation level (ignored for tabs)
output:
  extension: .py  # extension for derived output paths
  directory: ""   # optional directory for derived output paths
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, errors.KindIO, "write config file")
	}
	return nil
}
