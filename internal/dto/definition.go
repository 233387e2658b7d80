package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/hscramble/pkg/domain"
)

// Supported export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Definition is the exported view of a parsed definition file.
// Generators are kept as token lists so the output stays readable.
type Definition struct {
	N          uint8      `json:"n" yaml:"n"`
	D          uint8      `json:"d" yaml:"d"`
	Depth      uint32     `json:"depth" yaml:"depth"`
	Prefix     []string   `json:"prefix" yaml:"prefix"`
	Postfix    []string   `json:"postfix" yaml:"postfix"`
	Generators [][]string `json:"generators" yaml:"generators"`
}

// FromDomain converts a parsed definition into its exported view.
func FromDomain(def *domain.Definition) Definition {
	gens := make([][]string, len(def.Generators))
	for i, g := range def.Generators {
		gens[i] = g.Strings()
	}
	return Definition{
		N:          def.N,
		D:          def.D,
		Depth:      def.Depth,
		Prefix:     def.Prefix.Strings(),
		Postfix:    def.Postfix.Strings(),
		Generators: gens,
	}
}

// ToDomain converts the exported view back into a domain definition.
func (d Definition) ToDomain() *domain.Definition {
	gens := make([]domain.Generator, len(d.Generators))
	for i, g := range d.Generators {
		gens[i] = toGenerator(g)
	}
	return &domain.Definition{
		N:          d.N,
		D:          d.D,
		Depth:      d.Depth,
		Prefix:     toGenerator(d.Prefix),
		Postfix:    toGenerator(d.Postfix),
		Generators: gens,
	}
}

func toGenerator(tokens []string) domain.Generator {
	g := make(domain.Generator, len(tokens))
	for i, t := range tokens {
		g[i] = domain.Twist(t)
	}
	return g
}

// Marshal encodes def in the given format (yaml or json).
func Marshal(def *domain.Definition, format string) ([]byte, error) {
	view := FromDomain(def)

	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return nil, fmt.Errorf("failed to encode definition as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode definition as yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode definition as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatYAML, FormatJSON)
	}
}
