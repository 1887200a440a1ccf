package stoplist

import (
	"reflect"
	"testing"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"the", " A ", "and", ""})

	if !mgr.IsStop("the") {
		t.Error("'the' should be a stopword")
	}
	if !mgr.IsStop("a") {
		t.Error("terms should be lowercased and trimmed")
	}
	if mgr.IsStop("hello") {
		t.Error("'hello' should not be a stopword")
	}
	if mgr.Len() != 3 {
		t.Errorf("Expected 3 stopwords, got %d", mgr.Len())
	}
}

func TestManagerAllSorted(t *testing.T) {
	mgr := NewManager([]string{"the", "and", "a"})

	got := mgr.All()
	want := []string{"a", "and", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestNilManager(t *testing.T) {
	var mgr *Manager
	if mgr.IsStop("the") {
		t.Error("nil manager should have no stopwords")
	}
	if mgr.Len() != 0 {
		t.Error("nil manager should be empty")
	}
}

func TestDefaultTermsCopy(t *testing.T) {
	terms := DefaultTerms()
	terms[0] = "mutated"

	if DefaultTerms()[0] == "mutated" {
		t.Error("DefaultTerms should return a copy")
	}
	def := Default()
	for _, w := range []string{"hai", "nahi", "bhai", "the", "okay"} {
		if !def.IsStop(w) {
			t.Errorf("expected %q in default stoplist", w)
		}
	}
}

func TestMerge(t *testing.T) {
	a := NewManager([]string{"the"})
	b := NewManager([]string{"alice"})

	merged := Merge(a, nil, b)
	if !merged.IsStop("the") || !merged.IsStop("alice") {
		t.Error("merged manager should contain both sets")
	}
	if a.IsStop("alice") {
		t.Error("Merge must not modify its inputs")
	}
}

func TestFromNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"simple", []string{"Alice", "Bob"}, []string{"alice", "bob"}},
		{"multi part", []string{"Rahul Sharma 2"}, []string{"rahul", "sharma"}},
		{"phone number", []string{"+91 98765 43210"}, nil},
		{"mixed script", []string{"Priya ❤️ didi"}, []string{"didi", "priya"}},
		{"duplicates", []string{"Alice", "alice"}, []string{"alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromNames(tt.names).All()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromNames(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}

func TestAlphaRuns(t *testing.T) {
	got := AlphaRuns("Hello, wörld 42 abc-def")
	want := []string{"Hello", "w", "rld", "abc", "def"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AlphaRuns = %v, want %v", got, want)
	}
	if AlphaRuns("123 !!") != nil {
		t.Error("expected no runs")
	}
}
