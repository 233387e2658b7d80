package puzzlelog

// WrapWidth is the column limit for the twists block, before indentation.
const WrapWidth = 70

// WrapWords joins words with single spaces and breaks the line before any
// word that would push it past WrapWidth. Words are never split, so a word
// longer than WrapWidth sits alone on its own line.
// Widths are counted in bytes.
func WrapWords(words []string) []string {
	var lines []string
	var cur []byte
	for _, w := range words {
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= WrapWidth:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append(cur[:0], w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
