package main

import (
	"os"

	"github.com/aretw0/hscramble/internal/cli"
	"github.com/aretw0/hscramble/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check a definition file without generating a scramble",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		def, err := cli.Validate(args[0], debug)
		if err != nil {
			tui.NewStatus(cmd.ErrOrStderr()).Failure("Validation failed: %v", err)
			os.Exit(1)
		}
		tui.NewStatus(cmd.OutOrStdout()).Success("%s is valid (%dD, %d layers, depth %d, %d generators)",
			args[0], def.D, def.N, def.Depth, len(def.Generators))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
