package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/aretw0/hscramble/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from a scramble on Stdout).
func createLogger(debug bool) *slog.Logger {
	return logging.ForDebug(debug)
}

// readDefinition loads the definition file at path.
func readDefinition(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read definition: %w", err)
	}
	return string(data), nil
}

// isBrokenPipe reports whether err is a broken or closed pipe,
// which happens when a consumer like `head` exits early.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

func stdoutOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
