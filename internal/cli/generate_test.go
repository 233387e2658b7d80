package cli_test

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hscramble"
	"github.com/aretw0/hscramble/internal/cli"
	"github.com/aretw0/hscramble/internal/testutils"
	"github.com/aretw0/hscramble/pkg/domain"
)

const validDefinition = `n: 3
d: 4
depth: 2
prefix: zy
postfix:
generators:
IU OU
`

const wantLog = `# Hyperspeedcube puzzle log
---
version: 1
puzzle:
  Rubiks4D:
    layer_count: 3
state: 1
twists: >
  zy IU OU IU OU
`

func TestGenerate_Stdout(t *testing.T) {
	var stdout bytes.Buffer

	err := cli.Generate(cli.Options{
		Input:         testutils.WriteDefinition(t, validDefinition),
		Stdout:        &stdout,
		EngineOptions: []hscramble.Option{hscramble.WithRandomSource(&testutils.SequenceSource{})},
	})

	require.NoError(t, err)
	assert.Equal(t, wantLog, stdout.String())
}

func TestGenerate_OutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "scramble.hsc")
	var stdout bytes.Buffer

	err := cli.Generate(cli.Options{
		Input:         testutils.WriteDefinition(t, validDefinition),
		Output:        out,
		Stdout:        &stdout,
		EngineOptions: []hscramble.Option{hscramble.WithRandomSource(&testutils.SequenceSource{})},
	})

	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, wantLog, string(data))
}

func TestGenerate_ParseErrorLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "scramble.hsc")

	err := cli.Generate(cli.Options{
		Input:  testutils.WriteDefinition(t, "n: 3\nd: 4\ndepth: 1\nprefix:\npostfix:\ngenerators\n"),
		Output: out,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidGeneratorsHeader)
	assert.NoFileExists(t, out)
}

func TestGenerate_MissingInput(t *testing.T) {
	err := cli.Generate(cli.Options{Input: filepath.Join(t.TempDir(), "missing.def")})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "failed to read definition")
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	err := cli.Generate(cli.Options{
		Input:  testutils.WriteDefinition(t, validDefinition),
		Output: filepath.Join(dir, "no", "such", "dir", "out.hsc"),
	})
	assert.ErrorContains(t, err, "failed to write scramble")
}

func TestGenerate_ClosedPipeIsNotAnError(t *testing.T) {
	r, w := io.Pipe()
	require.NoError(t, r.Close())

	err := cli.Generate(cli.Options{
		Input:  testutils.WriteDefinition(t, validDefinition),
		Stdout: w,
	})
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {
		def, err := cli.Validate(testutils.WriteDefinition(t, validDefinition), false)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), def.Depth)
	})

	t.Run("Invalid names the file", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "n: abc\n")
		_, err := cli.Validate(path, false)
		assert.ErrorIs(t, err, domain.ErrInvalidNumber)
		assert.ErrorContains(t, err, path)
	})
}

func TestInspect(t *testing.T) {
	path := testutils.WriteDefinition(t, validDefinition)

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cli.Inspect(path, "yaml", &buf))
		assert.Contains(t, buf.String(), "depth: 2\n")
		assert.Contains(t, buf.String(), "- zy")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cli.Inspect(path, "json", &buf))
		assert.True(t, strings.HasPrefix(buf.String(), "{"))
		assert.Contains(t, buf.String(), `"generators"`)
	})

	t.Run("Bad format", func(t *testing.T) {
		assert.Error(t, cli.Inspect(path, "xml", io.Discard))
	})
}
