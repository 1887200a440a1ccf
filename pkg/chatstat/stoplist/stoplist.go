package stoplist

import (
	"sort"
	"strings"
)

// Manager holds an immutable set of stopwords. The pipeline never mutates a
// manager after construction; Merge and FromNames build new ones.
type Manager struct {
	stops map[string]struct{}
}

// defaultTerms is the baseline list: short Hindi/Hinglish function words in
// informal transliteration plus common English filler.
var defaultTerms = []string{
	// Hindi/Hinglish
	"hai", "ha", "haan", "han", "nahi", "nahin", "na", "nhi", "n", "h", "hu", "hun", "ho",
	"ka", "ki", "ke", "ko", "k", "se", "me", "mein", "mera", "meri", "mere", "ter", "tera", "teri", "tere",
	"aur", "or", "par", "pe", "bhi", "bhai", "toh", "to", "ye", "yaa", "ya", "wo", "vo", "w", "kya",
	"kab", "kyu", "kyun", "kahan", "idk", "lol", "ok", "okay", "hmm", "acha", "accha", "achha",
	// English filler
	"the", "a", "an", "and", "but", "is", "am", "are", "was", "were", "be", "been", "being",
	"i", "you", "he", "she", "we", "they", "my", "your", "our", "us", "them",
}

// DefaultTerms returns a copy of the built-in baseline stopword list.
func DefaultTerms() []string {
	out := make([]string, len(defaultTerms))
	copy(out, defaultTerms)
	return out
}

// Default returns a manager over the built-in baseline list.
func Default() *Manager {
	return NewManager(defaultTerms)
}

// NewManager creates a stoplist from the given terms. Terms are lowercased
// and trimmed; blanks are ignored.
func NewManager(terms []string) *Manager {
	stops := make(map[string]struct{}, len(terms))
	for _, s := range terms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		stops[s] = struct{}{}
	}
	return &Manager{stops: stops}
}

// IsStop checks if a token is a stopword. A nil manager has no stopwords.
func (m *Manager) IsStop(token string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[token]
	return ok
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.stops)
}

// All returns all stopwords in sorted order.
func (m *Manager) All() []string {
	if m == nil {
		return nil
	}
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Merge returns a new manager holding the union of all given managers.
// Nil managers are skipped.
func Merge(managers ...*Manager) *Manager {
	size := 0
	for _, m := range managers {
		size += m.Len()
	}
	stops := make(map[string]struct{}, size)
	for _, m := range managers {
		if m == nil {
			continue
		}
		for s := range m.stops {
			stops[s] = struct{}{}
		}
	}
	return &Manager{stops: stops}
}

// FromNames derives dynamic stopwords from participant names: every name is
// lowercased and split into runs of ASCII letters, and all runs are unioned.
// "Rahul Sharma 2" contributes "rahul" and "sharma".
func FromNames(names []string) *Manager {
	stops := make(map[string]struct{})
	for _, name := range names {
		for _, part := range AlphaRuns(strings.ToLower(name)) {
			stops[part] = struct{}{}
		}
	}
	return &Manager{stops: stops}
}

// AlphaRuns returns the maximal runs of ASCII letters in s, unchanged in
// case. Everything else (digits, punctuation, non-Latin scripts) separates
// runs and is dropped.
func AlphaRuns(s string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
