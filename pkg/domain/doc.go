/*
Package domain contains the core models of the scramble generator.

It defines the values produced by the definition parser and consumed by the sampler
and the puzzle-log renderer. This package is kept pure and free of external
dependencies like I/O or randomness.

# Key Entities

  - Twist: A single opaque move token (e.g. "R", "IU", "zy").
  - Generator: An ordered group of twists that is drawn and applied as one unit.
  - Definition: The parsed definition file (puzzle size, depth, prefix, postfix, pool).
  - ParseError: The typed failure returned when a definition file is malformed.
*/
package domain
