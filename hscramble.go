package hscramble

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/hscramble/internal/compiler"
	"github.com/aretw0/hscramble/internal/logging"
	"github.com/aretw0/hscramble/internal/presentation/puzzlelog"
	"github.com/aretw0/hscramble/internal/runtime"
	"github.com/aretw0/hscramble/pkg/domain"
)

// RandomSource yields uniform indexes into the generator pool.
type RandomSource = runtime.RandomSource

// Engine is the high-level entry point for the hscramble library.
// It wires the definition parser, the sampler and the puzzle-log renderer.
type Engine struct {
	parser *compiler.Parser
	rng    RandomSource
	logger *slog.Logger
	app    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRandomSource replaces the default random source.
// Scrambles are only reproducible when the injected source is.
func WithRandomSource(rng RandomSource) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithAppName sets the simulator named in the log header (default: "Hyperspeedcube").
func WithAppName(app string) Option {
	return func(e *Engine) {
		e.app = app
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		parser: compiler.NewParser(),
		app:    puzzlelog.DefaultApp,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.rng == nil {
		e.rng = runtime.NewRandomSource()
	}
	return e
}

// Parse converts definition text into a Definition.
// Failures are *domain.ParseError values.
func (e *Engine) Parse(text string) (*domain.Definition, error) {
	def, err := e.parser.Parse(text)
	if err != nil {
		e.logger.Debug("Definition rejected", "error", err)
		return nil, err
	}
	e.logger.Debug("Definition parsed",
		"n", def.N,
		"d", def.D,
		"depth", def.Depth,
		"generators", len(def.Generators))
	return def, nil
}

// Scramble draws a new twist stream for def.
func (e *Engine) Scramble(def *domain.Definition) []domain.Twist {
	return runtime.NewSampler(e.rng, runtime.WithLogger(e.logger)).Sample(def)
}

// Write draws a scramble for def and renders it as a puzzle log to w.
func (e *Engine) Write(w io.Writer, def *domain.Definition) error {
	return puzzlelog.Render(w, e.app, def, e.Scramble(def))
}

// Generate runs the whole pipeline on definition text and returns the puzzle log.
// Nothing is produced when the definition is malformed.
func (e *Engine) Generate(text string) (string, error) {
	def, err := e.Parse(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := e.Write(&sb, def); err != nil {
		return "", err
	}
	return sb.String(), nil
}
