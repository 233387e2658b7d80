/*
Package hscramble generates random scrambles for the Hyperspeedcube puzzle simulator.

A scramble is described by a small definition file: the puzzle size, the number of
random draws, fixed moves emitted before and after the random part, and a pool of
generators (groups of twists applied as one unit).

# Definition Format

Lines must appear in this order. Blank lines are ignored and "//" starts a comment.

	n: 3            // layer count
	d: 4            // dimensions
	depth: 100      // number of generators drawn
	prefix: zy      // always emitted first
	postfix:        // always emitted last
	generators:
	IU
	IU IU

# Usage

	eng := hscramble.New()
	out, err := eng.Generate(text)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)

The output is a Hyperspeedcube puzzle log whose twists block holds the prefix, the
depth randomly drawn generators and the postfix, wrapped at 70 columns.

Randomness is not seedable from the command line. Library users can inject a
RandomSource with WithRandomSource to make scrambles reproducible in tests.
*/
package hscramble
