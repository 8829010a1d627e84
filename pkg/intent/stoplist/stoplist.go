// Package stoplist provides a case-insensitive stopword membership set.
package stoplist

import "strings"

// Filter holds a stopword set. Membership checks fold case, so "The" and
// "the" are the same stopword.
type Filter struct {
	stops map[string]struct{}
}

// New creates a filter from an initial word list.
func New(words []string) *Filter {
	stops := make(map[string]struct{}, len(words))
	for _, w := range words {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Filter{stops: stops}
}

// IsStop reports whether word is a stopword.
func (f *Filter) IsStop(word string) bool {
	_, ok := f.stops[strings.ToLower(word)]
	return ok
}

// Add adds a word to the stoplist.
func (f *Filter) Add(word string) {
	f.stops[strings.ToLower(word)] = struct{}{}
}

// Remove removes a word from the stoplist.
func (f *Filter) Remove(word string) {
	delete(f.stops, strings.ToLower(word))
}

// All returns every stopword in the filter.
func (f *Filter) All() []string {
	result := make([]string, 0, len(f.stops))
	for s := range f.stops {
		result = append(result, s)
	}
	return result
}
