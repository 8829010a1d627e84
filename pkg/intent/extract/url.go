package extract

import "strings"

var urlSchemes = []string{"http://", "https://"}

// URLs scans text for http:// and https:// occurrences, one pass per
// scheme. Each occurrence extends forward until whitespace, a bracket
// character, or end of text, and the candidate is kept only when its host
// part is a dot-separated sequence of at least two non-empty
// alphanumeric-or-hyphen labels. Rejected candidates are skipped but the
// scan still advances past them. The two scheme passes are independent, so
// overlapping matches across schemes are permitted.
func URLs(text string) []Entity {
	var entities []Entity
	for _, scheme := range urlSchemes {
		from := 0
		for {
			idx := strings.Index(text[from:], scheme)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(scheme)
			for end < len(text) && !urlStop(text[end]) {
				end++
			}
			cand := text[start:end]
			if validURL(cand) {
				entities = append(entities, Entity{
					Type:  URL,
					Value: cand,
					Start: start,
					End:   end,
				})
			}
			// end > start always holds (the scheme itself has length),
			// so the scan makes progress whether or not the candidate
			// was accepted.
			from = end
		}
	}
	return entities
}

func urlStop(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', '<', '>', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func validURL(cand string) bool {
	parts := strings.Split(cand, "://")
	if len(parts) != 2 {
		return false
	}
	host := parts[1]
	if slash := strings.IndexByte(host, '/'); slash >= 0 {
		host = host[:slash]
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
		for i := 0; i < len(label); i++ {
			if !isAlnum(label[i]) && label[i] != '-' {
				return false
			}
		}
	}
	return true
}
