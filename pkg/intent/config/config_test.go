package config

import "testing"

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.Tokenizer.Lowercase {
		t.Error("Tokenizer-time lowercasing defaults off; the normalize stage owns folding")
	}
	if !s.Tokenizer.MergeSymbols {
		t.Error("Symbol merging defaults on")
	}
	if !s.Pipeline.EnableNormalization || !s.Pipeline.EnableCleaning ||
		!s.Pipeline.EnableExtraction || !s.Pipeline.EnableSegmentation {
		t.Errorf("All stage groups default on, got %+v", s.Pipeline)
	}
	if !s.Extraction.ExtractEmails || !s.Extraction.ExtractPhones ||
		!s.Extraction.ExtractURLs || !s.Extraction.ExtractNumbers {
		t.Errorf("All extractors default on, got %+v", s.Extraction)
	}
}
