package extract

import (
	"strings"
	"unicode"
)

// phoneDelims split text into candidate tokens before validation, together
// with whitespace.
const phoneDelims = ",;()<>[]{}"

// Phones scans text for phone-shaped candidates. Candidates are the runs
// left after splitting on whitespace and delimiter characters; a candidate
// qualifies when it is at least 10 characters long, consists only of
// digits and the separators "- . ( ) +", and carries 10 to 15 digits.
//
// Known limitation: the span is recovered by first-occurrence lookup in
// the source text, so a candidate string that appears more than once
// always reports the offset of its first occurrence.
func Phones(text string) []Entity {
	var entities []Entity
	candidates := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(phoneDelims, r)
	})
	for _, cand := range candidates {
		if !phoneShaped(cand) {
			continue
		}
		idx := strings.Index(text, cand)
		if idx < 0 {
			continue
		}
		entities = append(entities, Entity{
			Type:  Phone,
			Value: cand,
			Start: idx,
			End:   idx + len(cand),
		})
	}
	return entities
}

func phoneShaped(s string) bool {
	if len(s) < 10 {
		return false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			digits++
		case c == '-' || c == '.' || c == ' ' || c == '(' || c == ')' || c == '+':
			// accepted separator
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}
