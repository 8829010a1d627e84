// Package extract locates structured entities (emails, phone numbers,
// URLs, numbers) as substring spans of raw text.
//
// Each extractor is independent of the others and of tokenization: all of
// them scan the original text, append entities in the order matches are
// found, and never deduplicate across types. A digit run inside a phone
// number may therefore also be reported as a number entity.
package extract

// Type classifies an extracted entity.
type Type string

const (
	Email  Type = "email"
	Phone  Type = "phone"
	URL    Type = "url"
	Number Type = "number"
)

// Entity is a structured fact located in the source text. Value equals
// text[Start:End] at extraction time; normalization may rewrite Value
// afterwards but never the span.
type Entity struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
