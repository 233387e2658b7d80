package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDefinition writes content to a definition file in a fresh temp dir
// and returns its absolute path. It fails the test immediately on error.
func WriteDefinition(t *testing.T, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), "puzzle.def"))
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write definition")
	return absPath
}

// SequenceSource replays fixed indexes, then repeats the last one.
// It records every bound it was asked for.
type SequenceSource struct {
	Indexes []int
	Bounds  []int
	pos     int
}

// IntN implements the engine's random source.
func (s *SequenceSource) IntN(n int) int {
	s.Bounds = append(s.Bounds, n)
	if len(s.Indexes) == 0 {
		return 0
	}
	i := s.Indexes[min(s.pos, len(s.Indexes)-1)]
	s.pos++
	return i % n
}
