package main

import (
	"fmt"
	"os"

	"github.com/miyakoshi/septade/cmd/cli/diag"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddGroup(diag.Group)
	rootCmd.AddCommand(diag.Score)
	rootCmd.AddCommand(diag.Pillars)
	rootCmd.AddCommand(diag.Card)
}

var rootCmd = &cobra.Command{
	Use:  "septade-cli",
	Long: `Command line utilities for the Septade diagnosis engine`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
