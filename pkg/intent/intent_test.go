package intent

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/cognicore/intentpipe/pkg/intent/config"
	"github.com/cognicore/intentpipe/pkg/intent/extract"
	"github.com/cognicore/intentpipe/pkg/intent/internalerr"
)

const sampleText = "Call 555-123-4567 or email John.Doe@Example.com for 12.50 dollars."

func TestProcessDefaults(t *testing.T) {
	p := New(config.Defaults())

	res, err := p.Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}

	counts := map[extract.Type]int{}
	for _, e := range res.Entities {
		counts[e.Type]++
	}
	if counts[extract.Email] != 1 {
		t.Errorf("Expected 1 email entity, got %v", res.Entities)
	}
	if counts[extract.Phone] != 1 {
		t.Errorf("Expected 1 phone entity, got %v", res.Entities)
	}
	if counts[extract.Number] == 0 {
		t.Errorf("Expected number entities, got %v", res.Entities)
	}

	// Normalization lowercased the entity values.
	for _, e := range res.Entities {
		if e.Type == extract.Email && e.Value != "john.doe@example.com" {
			t.Errorf("Email value should be folded, got %q", e.Value)
		}
	}

	// Cleaning removed the punctuation tokens.
	for _, tok := range res.Tokens {
		if tok.Type == "punct" {
			t.Errorf("Punct token survived cleaning: %+v", tok)
		}
	}

	if len(res.Sentences) != 1 {
		t.Errorf("Expected 1 sentence, got %v", res.Sentences)
	}
}

func TestProcessEmptyText(t *testing.T) {
	p := New(config.Defaults())

	res, err := p.Process(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) != 0 || len(res.Entities) != 0 || len(res.Sentences) != 0 {
		t.Errorf("Empty text should produce an empty record, got %+v", res)
	}
}

func TestProcessExtractionDisabled(t *testing.T) {
	settings := config.Defaults()
	settings.Pipeline.EnableExtraction = false

	res, err := New(settings).Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Entities) != 0 {
		t.Errorf("Extraction disabled should yield zero entities, got %v", res.Entities)
	}
}

func TestProcessExtractorSelection(t *testing.T) {
	settings := config.Defaults()
	settings.Extraction.ExtractPhones = false
	settings.Extraction.ExtractNumbers = false
	settings.Extraction.ExtractURLs = false

	res, err := New(settings).Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range res.Entities {
		if e.Type != extract.Email {
			t.Errorf("Only email extraction was enabled, got %+v", e)
		}
	}
	if len(res.Entities) != 1 {
		t.Errorf("Expected exactly the email entity, got %v", res.Entities)
	}
}

func TestProcessDeterminism(t *testing.T) {
	a, err := New(config.Defaults()).Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(config.Defaults()).Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Two pipelines with identical settings must agree:\n%+v\n%+v", a, b)
	}
}

func TestCustomStageRunsAfterBuiltins(t *testing.T) {
	ran := false
	p := New(config.Defaults()).Use(func(ctx context.Context, r *Result) error {
		if len(r.Entities) == 0 || len(r.Sentences) == 0 {
			t.Error("Custom stage should see the built-ins' output")
		}
		ran = true
		return nil
	})

	if _, err := p.Process(context.Background(), sampleText); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("Custom stage did not run")
	}
}

func TestAddCustomProcessorAlias(t *testing.T) {
	calls := 0
	stage := func(ctx context.Context, r *Result) error {
		calls++
		return nil
	}

	p := New(config.Defaults()).Use(stage).AddCustomProcessor(stage)
	if _, err := p.Process(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("Both registrations should run, got %d calls", calls)
	}
}

func TestStageErrorPropagates(t *testing.T) {
	errBoom := errors.New("boom")
	p := New(config.Defaults()).Use(func(ctx context.Context, r *Result) error {
		return errBoom
	})

	res, err := p.Process(context.Background(), sampleText)
	if err != errBoom {
		t.Errorf("Stage error must surface verbatim, got %v", err)
	}
	if res != nil {
		t.Errorf("No partial result on failure, got %+v", res)
	}
}

func TestNilStageRejected(t *testing.T) {
	p := New(config.Defaults()).Use(nil)

	if _, err := p.Process(context.Background(), "x"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for a nil stage, got %v", err)
	}
}

func TestProcessCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(config.Defaults()).Process(ctx, sampleText); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	settings := config.Defaults()
	settings.Tokenizer.Lowercase = true

	if got := New(settings).Config(); !reflect.DeepEqual(got, settings) {
		t.Errorf("Config() should return the construction settings, got %+v", got)
	}
}

func TestProcessConcurrent(t *testing.T) {
	p := New(config.Defaults())

	want, err := p.Process(context.Background(), sampleText)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := p.Process(context.Background(), sampleText)
			if err != nil {
				t.Error(err)
				return
			}
			if !reflect.DeepEqual(res, want) {
				t.Error("Concurrent calls must not interfere")
			}
		}()
	}
	wg.Wait()
}
