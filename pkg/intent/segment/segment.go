// Package segment splits text into sentences.
package segment

import "strings"

// terminators end a sentence when followed by whitespace or end of text. A
// period followed directly by another character (decimals, domain names)
// is not a boundary.
const terminators = ".!?"

// Split breaks text into trimmed sentences, keeping each terminator run
// ("?!", "...") attached to its sentence. Text without a terminator yields
// a single sentence; empty or whitespace-only text yields none.
func Split(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		end := i + 1
		for end < len(text) && isTerminator(text[end]) {
			end++
		}
		if end < len(text) && !isSpace(text[end]) {
			i = end - 1
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(c byte) bool {
	return strings.IndexByte(terminators, c) >= 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
