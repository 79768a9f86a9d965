package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/sp-viktori/sp-variant/action"
	"github.com/sp-viktori/sp-variant/internal/run"
	"github.com/sp-viktori/sp-variant/variant"
)

var repoCommand = &cli.Command{
	Name:  "repo",
	Usage: "StorPool repository configuration",
	Subcommands: []*cli.Command{
		repoAddCommand,
		repoBuildCommand,
	},
}

var repoAddCommand = &cli.Command{
	Name:  "add",
	Usage: "Install the StorPool repository configuration on the current host",
	// No debugFlag here: -d is the repository directory, as the
	// install scripts expect. --debug still works from the top level.
	Flags: []cli.Flag{
		verboseFlag,
		noopFlag,
		&cli.StringFlag{
			Name:     "repodir",
			Usage:    "The directory containing the per-variant repository assets",
			Aliases:  []string{"d"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "repotype",
			Usage:   "The repository channel to install (contrib, staging, infra)",
			Aliases: []string{"t"},
			Value:   "contrib",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Do not ask for confirmation",
		},
	},
	Before: initLogging,
	Action: func(ctx *cli.Context) error {
		rtype, err := variant.RepoTypeByName(ctx.String("repotype"))
		if err != nil {
			return err
		}
		cfg := configFromCtx(ctx)
		cfg.RepoDir = ctx.String("repodir")
		cfg.RepoType = rtype

		vnt, err := variant.Detect(cfg)
		if err != nil {
			return err
		}
		var runner run.Runner = run.Local{}
		if cfg.Noop {
			runner = run.Noop{}
		}
		return action.RepoAdd{
			RepoDir:  cfg.RepoDir,
			RepoType: rtype,
			Force:    ctx.Bool("force"),
			Noop:     cfg.Noop,
			Runner:   runner,
		}.Run(cfg, vnt)
	},
}

var repoBuildCommand = &cli.Command{
	Name:  "build",
	Usage: "Render the per-variant repository asset tree",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
		verboseFlag,
		&cli.StringFlag{
			Name:    "templates",
			Usage:   "The directory containing the *.in repository templates",
			Aliases: []string{"t"},
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "The directory to create the per-variant tree in",
			Aliases: []string{"o"},
		},
		&cli.StringFlag{
			Name:      "config",
			Usage:     "Path to an optional build config yaml",
			Aliases:   []string{"c"},
			TakesFile: true,
		},
	},
	Before: initLogging,
	Action: func(ctx *cli.Context) error {
		bcfg, err := action.LoadBuildConfig(ctx.String("config"))
		if err != nil {
			return err
		}
		if ctx.IsSet("templates") {
			bcfg.Templates = ctx.String("templates")
		}
		if ctx.IsSet("output") {
			bcfg.Output = ctx.String("output")
		}

		reg, err := variant.Build()
		if err != nil {
			return err
		}
		return action.RepoBuild{Config: bcfg}.Run(configFromCtx(ctx), reg)
	},
}
