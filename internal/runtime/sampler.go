package runtime

import (
	"log/slog"

	"github.com/aretw0/hscramble/pkg/domain"
)

// Sampler draws scrambles from a definition's generator pool.
type Sampler struct {
	rng    RandomSource
	logger *slog.Logger
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger *slog.Logger) SamplerOption {
	return func(s *Sampler) {
		s.logger = logger
	}
}

// NewSampler creates a sampler backed by rng. A nil rng falls back to NewRandomSource.
func NewSampler(rng RandomSource, opts ...SamplerOption) *Sampler {
	if rng == nil {
		rng = NewRandomSource()
	}
	s := &Sampler{rng: rng}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Draw picks one generator uniformly from the pool.
// It reports false, without consulting the source, when the pool is empty.
func (s *Sampler) Draw(pool []domain.Generator) (domain.Generator, bool) {
	if len(pool) == 0 {
		return nil, false
	}
	return pool[s.rng.IntN(len(pool))], true
}

// Sample returns the full twist stream: the prefix, then def.Depth independent
// draws with replacement, then the postfix.
// An empty pool makes every draw contribute nothing.
func (s *Sampler) Sample(def *domain.Definition) []domain.Twist {
	twists := make([]domain.Twist, 0, len(def.Prefix)+len(def.Postfix))
	twists = append(twists, def.Prefix...)

	drawn := 0
	for range def.Depth {
		g, ok := s.Draw(def.Generators)
		if !ok {
			break
		}
		twists = append(twists, g...)
		drawn++
	}

	twists = append(twists, def.Postfix...)

	s.logger.Debug("Scramble sampled",
		"depth", def.Depth,
		"pool", len(def.Generators),
		"drawn", drawn,
		"twists", len(twists))
	return twists
}
