package cmd

import (
	"github.com/urfave/cli/v2"
)

// App is the main urfave/cli.App for sp-variant
var App = &cli.App{
	Name:  "sp-variant",
	Usage: "Handle OS distribution- and version-specific tasks",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
		verboseFlag,
	},
	Commands: []*cli.Command{
		versionCommand,
		detectCommand,
		commandCommand,
		repoCommand,
		showCommand,
		featuresCommand,
	},
}
