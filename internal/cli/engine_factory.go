package cli

import (
	"log/slog"

	"github.com/aretw0/hscramble"
)

// createEngine initializes an engine with standard CLI conventions.
func createEngine(opts Options, logger *slog.Logger) *hscramble.Engine {
	engineOpts := []hscramble.Option{hscramble.WithLogger(logger)}
	if opts.AppName != "" {
		engineOpts = append(engineOpts, hscramble.WithAppName(opts.AppName))
	}
	// Caller-supplied options go last so they can override the defaults above.
	engineOpts = append(engineOpts, opts.EngineOptions...)
	return hscramble.New(engineOpts...)
}
