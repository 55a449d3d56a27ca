// Command search runs one keyword search against Elasticsearch and prints
// the same data bundle the /search/json/ endpoint serves.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "search:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run a keyword search and print the result page as JSON",
		ArgsUsage: "<term...>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration file (overrides SEARCH_CONFIG_FILE)",
			},
			&cli.StringFlag{
				Name:  "index",
				Usage: "Index to search (overrides SEARCH_DEFAULT_INDEX)",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "1-indexed page number",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json or text",
				Value: formatJSON,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Indent the JSON output",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearch(ctx, searchOptions{
				ConfigPath: c.String("config"),
				Index:      c.String("index"),
				Page:       c.Int("page"),
				Format:     c.String("format"),
				Pretty:     c.Bool("pretty"),
				Debug:      c.Bool("debug"),
				Terms:      c.Args().Slice(),
			}, stdout, stderr)
		},
	}
}
