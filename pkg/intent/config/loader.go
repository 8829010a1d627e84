package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/intentpipe/pkg/intent/internalerr"
)

// Load reads a YAML settings file and overlays it onto Defaults(). Keys
// absent from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Defaults(), fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return f.overlay(Defaults()), nil
}

// LoadOrDefault behaves like Load but never fails: an unreadable or
// unparseable file logs a warning and yields the defaults. An empty path
// yields the defaults silently.
func LoadOrDefault(path string) Settings {
	if path == "" {
		return Defaults()
	}
	s, err := Load(path)
	if err != nil {
		log.Printf("config: %v, falling back to defaults", err)
	}
	return s
}

// Stoplist represents the stopword list file format.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
