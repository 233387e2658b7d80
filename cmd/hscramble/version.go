package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/hscramble"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hscramble",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hscramble version %s\n", strings.TrimSpace(hscramble.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
