package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hscramble/internal/testutils"
)

const definition = `n: 2
d: 3
depth: 5
prefix: x
postfix: y
generators:
R
`

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, cmd := range []*cobra.Command{rootCmd, inspectCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_GenerateToStdout(t *testing.T) {
	out, err := execute(t, "-i", testutils.WriteDefinition(t, definition))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Hyperspeedcube puzzle log\n"))
	assert.Contains(t, out, "  Rubiks3D:\n    layer_count: 2\n")
	assert.True(t, strings.HasSuffix(out, "twists: >\n  x R R R R R y\n"))
}

func TestRoot_GenerateToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.hsc")

	out, err := execute(t, "--input", testutils.WriteDefinition(t, definition), "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x R R R R R y")
}

func TestRoot_RequiresInput(t *testing.T) {
	_, err := execute(t)
	assert.ErrorContains(t, err, `required flag(s) "input" not set`)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--format", "json", testutils.WriteDefinition(t, definition))
	require.NoError(t, err)
	assert.Contains(t, out, `"depth": 5`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hscramble version "))
}
