package compiler

import (
	"strconv"
	"strings"

	"github.com/aretw0/hscramble/pkg/domain"
)

const commentMarker = "//"

// Field keys, in the order they must appear.
const (
	KeyN          = "n"
	KeyD          = "d"
	KeyDepth      = "depth"
	KeyPrefix     = "prefix"
	KeyPostfix    = "postfix"
	KeyGenerators = "generators"
)

// Parser is responsible for converting definition text into a Definition.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// line is a meaningful source line with its comment stripped.
type line struct {
	num  int
	text string
}

// Parse reads the definition grammar: the n, d, depth, prefix, postfix and
// generators lines in this exact order, followed by one generator per line.
// Comments start with "//" and run to the end of the line.
func (p *Parser) Parse(text string) (*domain.Definition, error) {
	c := &cursor{lines: meaningfulLines(text)}

	n, err := c.number(KeyN, 8)
	if err != nil {
		return nil, err
	}
	d, err := c.number(KeyD, 8)
	if err != nil {
		return nil, err
	}
	depth, err := c.number(KeyDepth, 32)
	if err != nil {
		return nil, err
	}
	prefix, err := c.twists(KeyPrefix)
	if err != nil {
		return nil, err
	}
	postfix, err := c.twists(KeyPostfix)
	if err != nil {
		return nil, err
	}

	header, ok := c.next()
	if !ok {
		return nil, &domain.ParseError{Kind: domain.ErrUnexpectedEOF, Field: KeyGenerators}
	}
	if header.text != KeyGenerators+":" {
		return nil, &domain.ParseError{
			Kind:  domain.ErrInvalidGeneratorsHeader,
			Field: KeyGenerators,
			Line:  header.num,
			Value: header.text,
		}
	}

	generators := make([]domain.Generator, 0, len(c.lines)-c.pos)
	for {
		l, ok := c.next()
		if !ok {
			break
		}
		generators = append(generators, domain.NewGenerator(l.text))
	}

	return &domain.Definition{
		N:          uint8(n),
		D:          uint8(d),
		Depth:      uint32(depth),
		Prefix:     prefix,
		Postfix:    postfix,
		Generators: generators,
	}, nil
}

// meaningfulLines strips comments and surrounding whitespace and drops
// every line left empty.
func meaningfulLines(text string) []line {
	var out []line
	for i, raw := range strings.Split(text, "\n") {
		if idx := strings.Index(raw, commentMarker); idx >= 0 {
			raw = raw[:idx]
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		out = append(out, line{num: i + 1, text: trimmed})
	}
	return out
}

type cursor struct {
	lines []line
	pos   int
}

func (c *cursor) next() (line, bool) {
	if c.pos >= len(c.lines) {
		return line{}, false
	}
	l := c.lines[c.pos]
	c.pos++
	return l, true
}

// value consumes the next line and returns what follows "key:".
func (c *cursor) value(key string) (line, string, error) {
	l, ok := c.next()
	if !ok {
		return l, "", &domain.ParseError{Kind: domain.ErrUnexpectedEOF, Field: key}
	}
	rest, found := strings.CutPrefix(l.text, key+":")
	if !found {
		return l, "", &domain.ParseError{
			Kind:  domain.ErrMissingKey,
			Field: key,
			Line:  l.num,
			Value: l.text,
		}
	}
	return l, strings.TrimSpace(rest), nil
}

func (c *cursor) number(key string, bitSize int) (uint64, error) {
	l, raw, err := c.value(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, bitSize)
	if err != nil {
		return 0, &domain.ParseError{
			Kind:  domain.ErrInvalidNumber,
			Field: key,
			Line:  l.num,
			Value: l.text,
			Err:   err,
		}
	}
	return v, nil
}

func (c *cursor) twists(key string) (domain.Generator, error) {
	_, raw, err := c.value(key)
	if err != nil {
		return nil, err
	}
	return domain.NewGenerator(raw), nil
}
