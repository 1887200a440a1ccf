package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/chatstat/pkg/chatstat/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", `terms:
  - yaar
  - arre
  - bro
`)

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if len(sl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(sl.Terms))
	}
	if sl.ReplaceDefaults {
		t.Error("replace_defaults should default to false")
	}

	expected := map[string]bool{"yaar": true, "arre": true, "bro": true}
	for _, term := range sl.Terms {
		if !expected[term] {
			t.Errorf("Unexpected term: %s", term)
		}
	}
}

func TestLoadStoplistMalformed(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", "terms: [unclosed\n")

	_, err := LoadStoplist(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadStoplistMissing(t *testing.T) {
	_, err := LoadStoplist("/nonexistent/stoplist.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadMedia(t *testing.T) {
	path := writeFile(t, "media.yaml", `types:
  - image
  - voice note
`)

	m, err := LoadMedia(path)
	if err != nil {
		t.Fatalf("Failed to load media types: %v", err)
	}
	if len(m.Types) != 2 || m.Types[1] != "voice note" {
		t.Errorf("Unexpected media types: %v", m.Types)
	}
}

func TestLoadMediaEmpty(t *testing.T) {
	path := writeFile(t, "media.yaml", "types: []\n")

	_, err := LoadMedia(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for empty list, got %v", err)
	}
}
