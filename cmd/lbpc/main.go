package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/lbpc/cmd/lbpc/commands"
	"git.home.luguber.info/inful/lbpc/internal/errors"
	"git.home.luguber.info/inful/lbpc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("lbpc"),
		kong.Description("Translate .lbp documents into target-language source"),
		kong.Vars{"version": version.Version},
	)

	g := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(g, cli)
	if err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		adapter.Report(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}
