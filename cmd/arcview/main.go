// Command arcview renders arc menus to PNG or SVG and answers hit-test
// queries against them.
//
// Usage:
//
//	arcview render --config menu.yaml --out menu.png
//	arcview render --label Home --label Mail --out menu.svg --press 200,40
//	arcview hit --config menu.yaml 200 40
//	arcview version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/arcview"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	labels     []string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:   "arcview",
		Short: "Render circular menus made of labeled ring sectors",
		Long: `arcview lays out ring sectors with curved labels around a common center.

In composer mode the active sectors split the full circle evenly, the first
one centered at the top. A layout comes from a YAML file (--config) or from
a list of labels (--label).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML layout file")
	flags.StringArrayVarP(&opts.labels, "label", "l", nil, "sector label, repeatable (ignored with --config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log layout passes to stderr")

	rootCmd.AddCommand(newRenderCommand(&opts))
	rootCmd.AddCommand(newHitCommand(&opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func setupLogging(w io.Writer, verbose bool) {
	if !verbose {
		return
	}
	arcview.SetLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arcview %s\n", arcview.Version)
		},
	}
}
