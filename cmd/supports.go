package cmd

import "github.com/spf13/cobra"

// supportsCmd answers mdBook's renderer support query. Roll tables come
// back as plain markdown any renderer understands, so the answer is always
// yes: exit status 0.
var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Report whether a renderer is supported",
	Args:  cobra.ExactArgs(1),
	Run:   func(cmd *cobra.Command, args []string) {},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
