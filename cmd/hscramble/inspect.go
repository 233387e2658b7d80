package main

import (
	"github.com/aretw0/hscramble/internal/cli"
	"github.com/aretw0/hscramble/internal/dto"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <definition>",
	Short: "Print the parsed definition",
	Long:  `Parses a definition file and prints the result as YAML or JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return cli.Inspect(args[0], format, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("format", "f", dto.FormatYAML, "Output format (yaml or json)")
}
