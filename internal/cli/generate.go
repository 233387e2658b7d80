package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hscramble"
	"github.com/aretw0/hscramble/internal/dto"
	"github.com/aretw0/hscramble/pkg/domain"
)

// Options configures a CLI invocation.
type Options struct {
	// Input is the path of the definition file. Required.
	Input string
	// Output is the path of the generated puzzle log. Empty means Stdout.
	Output string
	// Debug enables debug logging on Stderr.
	Debug bool
	// AppName overrides the simulator named in the log header.
	AppName string

	// Stdout receives output when Output is empty (default: os.Stdout).
	Stdout io.Writer
	// EngineOptions are appended to the engine configuration.
	EngineOptions []hscramble.Option
}

// Generate reads the definition, draws a scramble and writes the puzzle log.
// The definition is fully parsed and the log fully rendered before the
// output file is created, so a parse error never leaves a partial file.
func Generate(opts Options) error {
	logger := createLogger(opts.Debug)
	eng := createEngine(opts, logger)

	text, err := readDefinition(opts.Input)
	if err != nil {
		return err
	}
	def, err := eng.Parse(text)
	if err != nil {
		return fmt.Errorf("invalid definition %s: %w", opts.Input, err)
	}

	var buf bytes.Buffer
	if err := eng.Write(&buf, def); err != nil {
		return err
	}

	if opts.Output == "" {
		if _, err := stdoutOr(opts.Stdout).Write(buf.Bytes()); err != nil && !isBrokenPipe(err) {
			return fmt.Errorf("failed to write scramble: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write scramble: %w", err)
	}
	logger.Info("Scramble written", "path", opts.Output, "bytes", buf.Len())
	return nil
}

// Validate reads and parses the definition at path.
func Validate(path string, debug bool) (*domain.Definition, error) {
	eng := createEngine(Options{Debug: debug}, createLogger(debug))

	text, err := readDefinition(path)
	if err != nil {
		return nil, err
	}
	def, err := eng.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return def, nil
}

// Inspect parses the definition at path and prints it in the given format.
func Inspect(path, format string, w io.Writer) error {
	def, err := Validate(path, false)
	if err != nil {
		return err
	}
	data, err := dto.Marshal(def, format)
	if err != nil {
		return err
	}
	if _, err := stdoutOr(w).Write(data); err != nil && !isBrokenPipe(err) {
		return err
	}
	return nil
}
