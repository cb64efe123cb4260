// Package commands defines the lbpc subcommands and their shared plumbing.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/lbpc/internal/config"
	"git.home.luguber.info/inful/lbpc/internal/errors"
	"git.home.luguber.info/inful/lbpc/internal/transpile"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"lbpc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Translate a .lbp file into target source"`
	Check CheckCmd `cmd:"" help:"Validate directives without writing output"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Watch WatchCmd `cmd:"" help:"Translate continuously on input changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration for a command. A missing file is only an
// error when the path was set explicitly.
func LoadConfig(root *CLI) (*config.Config, error) {
	explicit := root.Config != config.DefaultPath
	return config.Load(root.Config, explicit)
}

// DeriveOutputPath determines the destination when no --output flag is given:
// the input path with its extension replaced by the configured target
// extension, optionally relocated into output.directory.
func DeriveOutputPath(inputPath string, cfg *config.Config) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + cfg.Output.Extension
	if cfg.Output.Directory != "" {
		base = filepath.Join(cfg.Output.Directory, filepath.Base(base))
	}
	return base
}

// overridePolicy applies per-command indent flag overrides on top of config.
func overridePolicy(cfg *config.Config, indentType string, indentSize int) (transpile.Policy, error) {
	policy := cfg.Policy()
	if indentType != "" {
		policy.Type = transpile.IndentType(indentType)
		switch policy.Type {
		case transpile.IndentSpaces, transpile.IndentTabs:
		default:
			return transpile.Policy{}, errors.InvalidIndentConfig(indentType)
		}
	}
	if indentSize > 0 {
		policy.Size = indentSize
	}
	return policy, nil
}
