package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/document"
)

// CheckCmd implements the 'check' command: it runs the directive pass only,
// validating every directive line and reporting the aliases that would be
// registered, without writing any output.
type CheckCmd struct {
	Input string `arg:"" help:"Input .lbp file"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	// Loaded for validation side effects; check has no other config needs.
	if _, err := LoadConfig(root); err != nil {
		return err
	}

	doc, err := document.Load(c.Input)
	if err != nil {
		return err
	}

	table, err := directive.Collect(doc.Lines(), directive.SlogSink{Logger: slog.Default()})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d lines, %d aliases, directives OK\n", c.Input, doc.Len(), table.Len())
	for _, pair := range table.Aliases() {
		fmt.Printf("  %s -> %s\n", pair[0], pair[1])
	}
	return nil
}
