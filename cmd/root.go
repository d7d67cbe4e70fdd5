package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MichalGniadek/mdbook-rolltables/internal/ui"
)

// Version is stamped by the release build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mdbook-rolltables",
	Short: "An mdBook preprocessor that fills roll tables with dice values",
	Long: `mdbook-rolltables rewrites roll tables while mdBook builds a book.

A table whose header starts with a lone "d" column and whose rows leave
that column empty gets a die picked from the row count, one roll value
per row and the header replaced with die notation such as d6 or d4.4.

mdBook runs the preprocessor itself; list it in book.toml:

  [preprocessor.rolltables]`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return preprocess(os.Stdin, os.Stdout)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.DefaultStyles().Errorf("%v", err)
		os.Exit(1)
	}
}
