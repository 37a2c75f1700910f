package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ThinkIshdeep/Chatur-Bazar/export"
)

// ExportCommand returns the export command, which writes the persisted
// catalog as CSV.
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the catalog as CSV",
		Flags: []cli.Flag{
			ConfigFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (default stdout)",
			},
		},
		Action: exportAction,
	}
}

func exportAction(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	snap, err := loadSnapshot(context.Background(), cfg.Storage)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, snap); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
