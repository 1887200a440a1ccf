package ingest

import (
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/stoplist"
)

// Tokenizer derives clean text: lowercase ASCII-alphabetic tokens with the
// baseline stopwords removed.
type Tokenizer struct {
	stops *stoplist.Manager
}

// NewTokenizer creates a tokenizer over the given baseline stoplist. A nil
// stoplist uses the built-in default.
func NewTokenizer(stops *stoplist.Manager) *Tokenizer {
	if stops == nil {
		stops = stoplist.Default()
	}
	return &Tokenizer{stops: stops}
}

// Stoplist returns the baseline stoplist.
func (t *Tokenizer) Stoplist() *stoplist.Manager {
	return t.stops
}

// Tokenize lowercases text and returns its alphabetic runs that are neither
// baseline stopwords nor in extra. Digits, punctuation and non-Latin scripts
// only separate tokens.
func (t *Tokenizer) Tokenize(text string, extra *stoplist.Manager) []string {
	var tokens []string
	for _, word := range stoplist.AlphaRuns(strings.ToLower(text)) {
		if t.stops.IsStop(word) || extra.IsStop(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Clean returns the surviving tokens joined by single spaces, or "" when
// nothing survives. Clean(Clean(x)) == Clean(x).
func (t *Tokenizer) Clean(text string, extra *stoplist.Manager) string {
	return strings.Join(t.Tokenize(text, extra), " ")
}
