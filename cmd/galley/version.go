package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galleydoc/galley"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of galley",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("galley %s\n", galley.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
