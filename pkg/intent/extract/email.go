package extract

import "regexp"

// emailPattern matches local@label(.label)+ where the local part is one or
// more of [A-Za-z0-9._%+-], domain labels are alphanumeric-and-hyphen, and
// the final label is alphabetic with at least two characters. Matches may
// be embedded in larger strings.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}`)

// Emails returns one entity per non-overlapping email-shaped match,
// scanning left to right.
func Emails(text string) []Entity {
	var entities []Entity
	for _, span := range emailPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{
			Type:  Email,
			Value: text[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		})
	}
	return entities
}
