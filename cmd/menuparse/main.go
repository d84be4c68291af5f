// Command menuparse converts a weekly menu workbook to JSON and can
// publish the result to a running menu API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "menuparse",
		Short:        "Parse weekly mess menu workbooks",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCmd(), newPublishCmd())
	return rootCmd
}
