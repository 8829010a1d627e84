// Package config provides the typed settings the pipeline reads at
// construction time, plus YAML file loading with defaults.
package config

// Settings carries every knob the pipeline reads at construction time. All
// fields are plain values; partial files overlay onto Defaults() field by
// field rather than being merged dynamically (see loader.go).
type Settings struct {
	Tokenizer  TokenizerSettings  `yaml:"tokenizer"`
	Pipeline   PipelineSettings   `yaml:"pipeline"`
	Extraction ExtractionSettings `yaml:"extraction"`
}

// TokenizerSettings fix tokenizer behavior.
type TokenizerSettings struct {
	Lowercase    bool `yaml:"lowercase"`
	MergeSymbols bool `yaml:"merge_symbols"`
}

// PipelineSettings select which built-in stage groups are registered.
type PipelineSettings struct {
	EnableNormalization bool `yaml:"enable_normalization"`
	EnableCleaning      bool `yaml:"enable_cleaning"`
	EnableExtraction    bool `yaml:"enable_extraction"`
	EnableSegmentation  bool `yaml:"enable_segmentation"`
}

// ExtractionSettings select extractors by entity type. They only matter
// when PipelineSettings.EnableExtraction is set.
type ExtractionSettings struct {
	ExtractEmails  bool `yaml:"extract_emails"`
	ExtractPhones  bool `yaml:"extract_phones"`
	ExtractURLs    bool `yaml:"extract_urls"`
	ExtractNumbers bool `yaml:"extract_numbers"`
}

// Defaults returns the built-in settings: every stage and extractor
// enabled, symbol merging on, and tokenizer-time lowercasing off because
// the normalize stage owns case folding.
func Defaults() Settings {
	return Settings{
		Tokenizer: TokenizerSettings{
			Lowercase:    false,
			MergeSymbols: true,
		},
		Pipeline: PipelineSettings{
			EnableNormalization: true,
			EnableCleaning:      true,
			EnableExtraction:    true,
			EnableSegmentation:  true,
		},
		Extraction: ExtractionSettings{
			ExtractEmails:  true,
			ExtractPhones:  true,
			ExtractURLs:    true,
			ExtractNumbers: true,
		},
	}
}

// file mirrors Settings with pointer fields so keys absent from a YAML
// document are distinguishable from an explicit false.
type file struct {
	Tokenizer struct {
		Lowercase    *bool `yaml:"lowercase"`
		MergeSymbols *bool `yaml:"merge_symbols"`
	} `yaml:"tokenizer"`
	Pipeline struct {
		EnableNormalization *bool `yaml:"enable_normalization"`
		EnableCleaning      *bool `yaml:"enable_cleaning"`
		EnableExtraction    *bool `yaml:"enable_extraction"`
		EnableSegmentation  *bool `yaml:"enable_segmentation"`
	} `yaml:"pipeline"`
	Extraction struct {
		ExtractEmails  *bool `yaml:"extract_emails"`
		ExtractPhones  *bool `yaml:"extract_phones"`
		ExtractURLs    *bool `yaml:"extract_urls"`
		ExtractNumbers *bool `yaml:"extract_numbers"`
	} `yaml:"extraction"`
}

// overlay applies every field present in f onto base and returns the
// combined settings.
func (f *file) overlay(base Settings) Settings {
	if f.Tokenizer.Lowercase != nil {
		base.Tokenizer.Lowercase = *f.Tokenizer.Lowercase
	}
	if f.Tokenizer.MergeSymbols != nil {
		base.Tokenizer.MergeSymbols = *f.Tokenizer.MergeSymbols
	}
	if f.Pipeline.EnableNormalization != nil {
		base.Pipeline.EnableNormalization = *f.Pipeline.EnableNormalization
	}
	if f.Pipeline.EnableCleaning != nil {
		base.Pipeline.EnableCleaning = *f.Pipeline.EnableCleaning
	}
	if f.Pipeline.EnableExtraction != nil {
		base.Pipeline.EnableExtraction = *f.Pipeline.EnableExtraction
	}
	if f.Pipeline.EnableSegmentation != nil {
		base.Pipeline.EnableSegmentation = *f.Pipeline.EnableSegmentation
	}
	if f.Extraction.ExtractEmails != nil {
		base.Extraction.ExtractEmails = *f.Extraction.ExtractEmails
	}
	if f.Extraction.ExtractPhones != nil {
		base.Extraction.ExtractPhones = *f.Extraction.ExtractPhones
	}
	if f.Extraction.ExtractURLs != nil {
		base.Extraction.ExtractURLs = *f.Extraction.ExtractURLs
	}
	if f.Extraction.ExtractNumbers != nil {
		base.Extraction.ExtractNumbers = *f.Extraction.ExtractNumbers
	}
	return base
}
