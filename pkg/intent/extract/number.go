package extract

import "strconv"

// Numbers scans text character by character for numeric substrings,
// independent of tokenization-time number detection. A candidate opens at
// a digit and may consume exactly one decimal point when it is immediately
// preceded and followed by a digit, which keeps a sentence-final period or
// list separator out of the match. Candidates are validated by numeric
// parsing before being reported.
func Numbers(text string) []Entity {
	var entities []Entity
	i := 0
	for i < len(text) {
		if !isDigit(text[i]) && text[i] != '.' {
			i++
			continue
		}
		start := i
		dot := false
		for i < len(text) {
			if isDigit(text[i]) {
				i++
				continue
			}
			if text[i] == '.' && !dot && i > start && isDigit(text[i-1]) &&
				i+1 < len(text) && isDigit(text[i+1]) {
				dot = true
				i++
				continue
			}
			break
		}
		if i == start {
			// A dot with no digit after it opens no candidate.
			i++
			continue
		}
		cand := text[start:i]
		if _, err := strconv.ParseFloat(cand, 64); err == nil {
			entities = append(entities, Entity{
				Type:  Number,
				Value: cand,
				Start: start,
				End:   i,
			})
		}
	}
	return entities
}
