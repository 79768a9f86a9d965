package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sp-viktori/sp-variant/variant"
)

var featuresCommand = &cli.Command{
	Name:  "features",
	Usage: "Display the features supported by this tool",
	Action: func(_ *cli.Context) error {
		fmt.Printf("Features: repo=%s variant=%s format=%d.%d\n",
			variant.RepoFormatVersion, variant.Version,
			variant.FormatMajor, variant.FormatMinor)
		return nil
	},
}
