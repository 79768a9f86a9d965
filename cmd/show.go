package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sp-viktori/sp-variant/variant"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Display the data for a build variant as JSON",
	ArgsUsage: "<name | all | current>",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
		verboseFlag,
	},
	Before: initLogging,
	Action: func(ctx *cli.Context) error {
		name := ctx.Args().First()
		if name == "" {
			return fmt.Errorf("no variant name specified")
		}

		reg, err := variant.Build()
		if err != nil {
			return err
		}
		if name == "all" {
			return printJSON(reg.ExportAll())
		}

		var vnt *variant.Variant
		if name == "current" {
			vnt, err = variant.Detect(configFromCtx(ctx))
		} else {
			vnt, err = reg.Get(name)
		}
		if err != nil {
			return err
		}
		return printJSON(variant.ExportSingle(vnt))
	},
}

func printJSON(doc interface{}) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
