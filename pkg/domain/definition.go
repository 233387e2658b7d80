package domain

import "strings"

// Twist is one atomic move. Its content is never interpreted, only tokenized.
type Twist string

// Generator is an ordered sequence of twists drawn as a single unit.
type Generator []Twist

// NewGenerator builds a Generator from whitespace-separated twist tokens.
func NewGenerator(s string) Generator {
	fields := strings.Fields(s)
	g := make(Generator, 0, len(fields))
	for _, f := range fields {
		g = append(g, Twist(f))
	}
	return g
}

// Len returns the number of twists in the generator.
func (g Generator) Len() int {
	return len(g)
}

// Strings returns the twists as plain strings.
func (g Generator) Strings() []string {
	out := make([]string, len(g))
	for i, t := range g {
		out[i] = string(t)
	}
	return out
}

func (g Generator) String() string {
	return strings.Join(g.Strings(), " ")
}

// Definition is a parsed scramble definition file.
// It is treated as immutable once returned by the parser.
type Definition struct {
	// N is the layer count of the puzzle.
	N uint8
	// D is the number of dimensions.
	D uint8
	// Depth is how many generators are drawn from the pool.
	Depth uint32

	// Prefix is always emitted first and Postfix always last.
	Prefix  Generator
	Postfix Generator

	// Generators is the sampling pool, in file order. It may be empty.
	Generators []Generator
}
