package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/transpile"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Input      string `arg:"" help:"Input .lbp file"`
	Output     string `short:"o" help:"Output file path (default: input with configured extension)"`
	IndentType string `name:"indent-type" help:"Override indent.type (spaces|tabs)"`
	IndentSize int    `name:"indent-size" help:"Override indent.size"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	policy, err := overridePolicy(cfg, b.IndentType, b.IndentSize)
	if err != nil {
		return err
	}

	outputPath := b.Output
	if outputPath == "" {
		outputPath = DeriveOutputPath(b.Input, cfg)
	}

	slog.Info("Starting translation",
		"input", b.Input,
		"output", outputPath,
		"indent_type", string(policy.Type),
		"indent_size", policy.Size)

	translator := transpile.NewTranslator(policy,
		transpile.WithEventSink(directive.SlogSink{Logger: slog.Default()}))
	return translator.TranslateFile(b.Input, outputPath)
}
