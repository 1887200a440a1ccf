// Package links finds and strips URL-like substrings in message text.
package links

import (
	"regexp"

	"mvdan.cc/xurls/v2"
)

// Finder detects URLs. A nil or zero Finder behaves like NewFinder().
type Finder struct {
	re *regexp.Regexp
}

var relaxed = xurls.Relaxed()

// NewFinder returns a finder that accepts URLs with or without a scheme
// ("example.com/page" counts as a link, like the chat apps render it).
func NewFinder() *Finder {
	return &Finder{re: relaxed}
}

// NewStrictFinder returns a finder that only accepts URLs with a scheme.
func NewStrictFinder() *Finder {
	return &Finder{re: xurls.Strict()}
}

// Find returns every URL in s, in order, duplicates included.
func (f *Finder) Find(s string) []string {
	if s == "" {
		return nil
	}
	if f == nil || f.re == nil {
		return relaxed.FindAllString(s, -1)
	}
	return f.re.FindAllString(s, -1)
}

// Count returns the number of URLs in s.
func (f *Finder) Count(s string) int {
	return len(f.Find(s))
}

var stripRe = regexp.MustCompile(`http\S+|www\.\S+`)

// Strip blanks out anything that starts like a link ("http…", "www.…").
// It works on tokenized text too, where a URL has already been split into
// words and only its "https" head remains.
func Strip(s string) string {
	return stripRe.ReplaceAllString(s, " ")
}
