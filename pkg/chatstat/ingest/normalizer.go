package ingest

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var defaultMediaTypes = []string{
	"image", "video", "gif", "audio", "sticker", "document", "documents", "media",
}

// DefaultMediaTypes returns the media words recognized in "<x> omitted"
// placeholder lines by default.
func DefaultMediaTypes() []string {
	out := make([]string, len(defaultMediaTypes))
	copy(out, defaultMediaTypes)
	return out
}

// Normalizer canonicalizes raw message text.
type Normalizer struct {
	omitted *regexp.Regexp
	compose bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithComposition applies Unicode NFC after cleaning, so a decomposed
// "e"+U+0301 becomes U+00E9. Off by default: the tokenizer keeps only ASCII
// letters, and a composed accent drops the letter from the clean text.
func WithComposition() NormalizerOption {
	return func(n *Normalizer) { n.compose = true }
}

// NewNormalizer builds a normalizer recognizing the given media words.
// An empty list falls back to DefaultMediaTypes.
func NewNormalizer(mediaTypes []string, opts ...NormalizerOption) *Normalizer {
	words := make([]string, 0, len(mediaTypes))
	for _, w := range mediaTypes {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, regexp.QuoteMeta(w))
	}
	if len(words) == 0 {
		for _, w := range defaultMediaTypes {
			words = append(words, regexp.QuoteMeta(w))
		}
	}
	// Accepts "document omitted", "<document omitted>", "[document omitted]"
	// and "document omitted.".
	pattern := `(?i)^[\[<]?\s*(?:` + strings.Join(words, "|") + `)\s+omitted\.?\s*[\]>]?$`
	n := &Normalizer{omitted: regexp.MustCompile(pattern)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns the canonical form of raw.
func (n *Normalizer) Normalize(raw string) string {
	text, _ := n.Classify(raw)
	return text
}

// Classify normalizes raw and reports whether it was a media placeholder.
func (n *Normalizer) Classify(raw string) (string, Kind) {
	text := strings.Map(dropInvisible, raw)
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.Join(strings.Fields(text), " ")
	if n.compose {
		text = norm.NFC.String(text)
	}

	if n.omitted.MatchString(text) {
		return Omitted, KindOmitted
	}
	return text, KindText
}

// dropInvisible removes directional marks, bidi embeddings/isolates and the
// byte-order mark that chat exports sprinkle around names and timestamps.
func dropInvisible(r rune) rune {
	switch {
	case r == '\u200e', r == '\u200f', r == '\ufeff':
		return -1
	case r >= '\u202a' && r <= '\u202e':
		return -1
	case r >= '\u2066' && r <= '\u2069':
		return -1
	}
	return r
}
