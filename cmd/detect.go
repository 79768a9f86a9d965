package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sp-viktori/sp-variant/variant"
)

var detectCommand = &cli.Command{
	Name:  "detect",
	Usage: "Detect the build variant of the current host",
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
		fmt.Println(vnt.Name)
		return nil
	},
}
