package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/hscramble"
	"github.com/aretw0/hscramble/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hscramble -i <definition> [-o <output>]",
	Short: "Generate a scramble for Hyperspeedcube",
	Long: `hscramble reads a scramble definition file and writes a Hyperspeedcube puzzle log
whose twists are the prefix, depth random generators from the pool, and the postfix.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.Generate(cli.Options{
			Input:  input,
			Output: output,
			Debug:  debug,
			Stdout: cmd.OutOrStdout(),
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = strings.TrimSpace(hscramble.Version)

	rootCmd.Flags().StringP("input", "i", "", "Path of the definition file")
	rootCmd.Flags().StringP("output", "o", "", "Where to put the scramble (default: stdout)")
	_ = rootCmd.MarkFlagRequired("input")

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
