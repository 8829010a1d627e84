// Package tokenize splits raw text into classified, span-carrying tokens.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type classifies a token.
type Type string

const (
	Word   Type = "word"
	Number Type = "number"
	Punct  Type = "punct"
	Symbol Type = "symbol"
)

// Token is a minimal lexical unit with its byte span in the source text.
// Start and End never change after tokenization; Value may be rewritten by
// later normalization.
type Token struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Options fix tokenizer behavior at construction time.
type Options struct {
	// Lowercase folds word token values while scanning. The normalize
	// stage also folds, so most callers leave this off and let the stage
	// own case handling.
	Lowercase bool
	// MergeSymbols merges a maximal run of adjacent non-alphanumeric,
	// non-whitespace characters into a single token instead of one token
	// per character.
	MergeSymbols bool
}

// Tokenizer scans text into tokens. It holds no mutable state, so a single
// instance is safe for concurrent use.
type Tokenizer struct {
	opts Options
}

// New creates a tokenizer with the given options.
func New(opts Options) *Tokenizer {
	return &Tokenizer{opts: opts}
}

// Options returns the options the tokenizer was built with.
func (t *Tokenizer) Options() Options { return t.opts }

// Tokenize scans text left to right into classified tokens. Whitespace
// separates tokens and is never emitted; every other input character lands
// in exactly one token, so nothing is dropped before a cleaning pass runs.
//
// Word tokens start at an ASCII letter and may contain digits after that
// ("gpt4", "utf8"). Number tokens are digit runs with at most one interior
// decimal point flanked by digits on both sides; a lone period is a
// punctuation token, never part of a number.
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case isSpace(c):
			i++
		case isLetter(c):
			start := i
			i++
			for i < len(text) && (isLetter(text[i]) || isDigit(text[i])) {
				i++
			}
			value := text[start:i]
			if t.opts.Lowercase {
				value = strings.ToLower(value)
			}
			tokens = append(tokens, Token{Type: Word, Value: value, Start: start, End: i})
		case isDigit(c):
			start := i
			i++
			dot := false
			for i < len(text) {
				if isDigit(text[i]) {
					i++
					continue
				}
				if text[i] == '.' && !dot && i+1 < len(text) && isDigit(text[i+1]) {
					dot = true
					i += 2
					continue
				}
				break
			}
			tokens = append(tokens, Token{Type: Number, Value: text[start:i], Start: start, End: i})
		default:
			start := i
			r, size := utf8.DecodeRuneInString(text[i:])
			i += size
			runes := 1
			if t.opts.MergeSymbols {
				for i < len(text) && !isSpace(text[i]) && !isLetter(text[i]) && !isDigit(text[i]) {
					_, size = utf8.DecodeRuneInString(text[i:])
					i += size
					runes++
				}
			}
			// A merged run has no single punctuation identity, so it is
			// always a symbol; a lone rune keeps its own class.
			typ := Symbol
			if runes == 1 && unicode.IsPunct(r) {
				typ = Punct
			}
			tokens = append(tokens, Token{Type: typ, Value: text[start:i], Start: start, End: i})
		}
	}
	return tokens
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
