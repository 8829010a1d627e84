// Package intent implements an intent pre-processing pipeline: raw text is
// tokenized once, then a single result record is threaded through an
// ordered list of stages that extract entities and normalize or clean the
// token stream.
package intent

import (
	"context"

	"github.com/cognicore/intentpipe/pkg/intent/config"
	"github.com/cognicore/intentpipe/pkg/intent/extract"
	"github.com/cognicore/intentpipe/pkg/intent/internalerr"
	"github.com/cognicore/intentpipe/pkg/intent/tokenize"
)

// Result is the carrier record threaded through pipeline stages. Text is
// fixed for the lifetime of one Process call; stages mutate Tokens,
// Entities and Sentences in place. Extractors always scan Text, never
// token values.
type Result struct {
	Text      string           `json:"text"`
	Tokens    []tokenize.Token `json:"tokens"`
	Entities  []extract.Entity `json:"entities"`
	Sentences []string         `json:"sentences,omitempty"`
}

// Stage transforms a Result. Stages run strictly in registration order and
// each completes fully before the next begins. A stage error aborts the
// Process call that ran it.
type Stage func(ctx context.Context, r *Result) error

// Pipeline tokenizes text once per Process call and threads a fresh Result
// through its stage list. Settings and the stage list are fixed after
// construction (and any Use calls made before processing starts), so
// independent Process calls share no mutable state and may run
// concurrently.
type Pipeline struct {
	settings  config.Settings
	tokenizer *tokenize.Tokenizer
	stages    []Stage
}

// New builds a pipeline with the built-in stages selected by settings.
// Built-ins register in a fixed order: extraction (emails, phones, urls,
// numbers), normalization, cleaning, segmentation. Extraction precedes
// normalization so entity values are case-folded along with tokens.
func New(settings config.Settings) *Pipeline {
	p := &Pipeline{
		settings: settings,
		tokenizer: tokenize.New(tokenize.Options{
			Lowercase:    settings.Tokenizer.Lowercase,
			MergeSymbols: settings.Tokenizer.MergeSymbols,
		}),
	}

	if settings.Pipeline.EnableExtraction {
		if settings.Extraction.ExtractEmails {
			p.stages = append(p.stages, ExtractStage(extract.Emails))
		}
		if settings.Extraction.ExtractPhones {
			p.stages = append(p.stages, ExtractStage(extract.Phones))
		}
		if settings.Extraction.ExtractURLs {
			p.stages = append(p.stages, ExtractStage(extract.URLs))
		}
		if settings.Extraction.ExtractNumbers {
			p.stages = append(p.stages, ExtractStage(extract.Numbers))
		}
	}
	if settings.Pipeline.EnableNormalization {
		p.stages = append(p.stages, NormalizeStage())
	}
	if settings.Pipeline.EnableCleaning {
		p.stages = append(p.stages, CleanStage())
	}
	if settings.Pipeline.EnableSegmentation {
		p.stages = append(p.stages, SegmentStage())
	}

	return p
}

// Use appends a custom stage after every stage already registered and
// returns the pipeline for chaining.
func (p *Pipeline) Use(stage Stage) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// AddCustomProcessor is an alias for Use.
func (p *Pipeline) AddCustomProcessor(stage Stage) *Pipeline {
	return p.Use(stage)
}

// Config returns the settings the pipeline was built with.
func (p *Pipeline) Config() config.Settings {
	return p.settings
}

// Process tokenizes text, initializes a fresh Result, and applies every
// registered stage in order. The first stage error aborts the run and is
// returned as-is; no partial result is returned alongside it.
func (p *Pipeline) Process(ctx context.Context, text string) (*Result, error) {
	r := &Result{
		Text:     text,
		Tokens:   p.tokenizer.Tokenize(text),
		Entities: []extract.Entity{},
	}

	for _, stage := range p.stages {
		if stage == nil {
			return nil, internalerr.ErrInvalidInput
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage(ctx, r); err != nil {
			return nil, err
		}
	}

	return r, nil
}
