package cmd

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/urfave/cli/v2"

	"github.com/sp-viktori/sp-variant/action"
	"github.com/sp-viktori/sp-variant/internal/run"
	"github.com/sp-viktori/sp-variant/variant"
)

var commandCommand = &cli.Command{
	Name:  "command",
	Usage: "Distribution-specific commands",
	Subcommands: []*cli.Command{
		commandListCommand,
		commandRunCommand,
	},
}

// Commands whose full text is too unwieldy for the listing.
var commandListElided = map[string]bool{
	"pkgfile.install": true,
}

var commandListCommand = &cli.Command{
	Name:  "list",
	Usage: "List the commands for the current host's build variant",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
		verboseFlag,
	},
	Before: initLogging,
	Action: func(ctx *cli.Context) error {
		vnt, err := variant.Detect(configFromCtx(ctx))
		if err != nil {
			return err
		}
		vnt.EachCommand(func(category, operation string, cmd []string) {
			shown := shellescape.QuoteCommand(cmd)
			if commandListElided[category+"."+operation] {
				shown = "..."
			}
			fmt.Printf("%s.%s: %s\n", category, operation, shown)
		})
		return nil
	},
}

var commandRunCommand = &cli.Command{
	Name:      "run",
	Usage:     "Run a distribution-specific command",
	ArgsUsage: "<category.command> [args...]",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
		verboseFlag,
		noopFlag,
	},
	Before: initLogging,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return fmt.Errorf("no category.command specified")
		}
		cfg := configFromCtx(ctx)
		cfg.Command = ctx.Args().First()
		cfg.Args = ctx.Args().Tail()

		vnt, err := variant.Detect(cfg)
		if err != nil {
			return err
		}
		return action.CommandRun{
			Path:   cfg.Command,
			Args:   cfg.Args,
			Noop:   cfg.Noop,
			Runner: run.Local{},
		}.Run(cfg, vnt)
	},
}
