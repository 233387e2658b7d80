package puzzlelog

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aretw0/hscramble/pkg/domain"
)

// DefaultApp is the simulator named in the log header.
const DefaultApp = "Hyperspeedcube"

const header = `# %s puzzle log
---
version: 1
puzzle:
  Rubiks%dD:
    layer_count: %d
state: 1
twists: >
`

const indent = "  "

// Render writes a puzzle log for def whose twists block holds the given
// twist stream. An empty app falls back to DefaultApp.
func Render(w io.Writer, app string, def *domain.Definition, twists []domain.Twist) error {
	if app == "" {
		app = DefaultApp
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, header, app, def.D, def.N)

	words := make([]string, len(twists))
	for i, t := range twists {
		words[i] = string(t)
	}
	for _, line := range WrapWords(words) {
		bw.WriteString(indent)
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
