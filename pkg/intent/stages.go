package intent

import (
	"context"
	"strconv"
	"strings"

	"github.com/cognicore/intentpipe/pkg/intent/extract"
	"github.com/cognicore/intentpipe/pkg/intent/segment"
	"github.com/cognicore/intentpipe/pkg/intent/stoplist"
	"github.com/cognicore/intentpipe/pkg/intent/tokenize"
)

// Extractor locates entities in raw text.
type Extractor func(text string) []extract.Entity

// ExtractStage wraps an extractor as a pipeline stage. The extractor scans
// the original text and its matches are appended to the entity list in the
// order they were found.
func ExtractStage(fn Extractor) Stage {
	return func(ctx context.Context, r *Result) error {
		r.Entities = append(r.Entities, fn(r.Text)...)
		return nil
	}
}

// NormalizeStage lowercases word tokens and all entity values, and
// rewrites number tokens to their canonical decimal form ("007" becomes
// "7", "12.50" becomes "12.5" — an accepted lossy normalization). Spans
// and ordering never change, and a second application is a no-op.
func NormalizeStage() Stage {
	return func(ctx context.Context, r *Result) error {
		for i := range r.Tokens {
			switch r.Tokens[i].Type {
			case tokenize.Word:
				r.Tokens[i].Value = strings.ToLower(r.Tokens[i].Value)
			case tokenize.Number:
				if v, err := strconv.ParseFloat(r.Tokens[i].Value, 64); err == nil {
					r.Tokens[i].Value = strconv.FormatFloat(v, 'f', -1, 64)
				}
			}
		}
		for i := range r.Entities {
			r.Entities[i].Value = strings.ToLower(r.Entities[i].Value)
		}
		return nil
	}
}

// CleanStage removes punctuation tokens, preserving the relative order of
// the remainder. Entities are untouched. Idempotent.
func CleanStage() Stage {
	return func(ctx context.Context, r *Result) error {
		kept := r.Tokens[:0]
		for _, tok := range r.Tokens {
			if tok.Type != tokenize.Punct {
				kept = append(kept, tok)
			}
		}
		r.Tokens = kept
		return nil
	}
}

// SegmentStage splits the original text into sentences, replacing any
// previous split. Tokens and entities are untouched.
func SegmentStage() Stage {
	return func(ctx context.Context, r *Result) error {
		r.Sentences = segment.Split(r.Text)
		return nil
	}
}

// StopwordStage removes word tokens whose value is in the filter. No
// settings flag registers it; wire it with Use.
func StopwordStage(f *stoplist.Filter) Stage {
	return func(ctx context.Context, r *Result) error {
		kept := r.Tokens[:0]
		for _, tok := range r.Tokens {
			if tok.Type == tokenize.Word && f.IsStop(tok.Value) {
				continue
			}
			kept = append(kept, tok)
		}
		r.Tokens = kept
		return nil
	}
}
