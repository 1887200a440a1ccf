package config

import (
	"testing"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}

	if comp.Normalizer == nil || comp.Tokenizer == nil || comp.Pipeline == nil {
		t.Fatal("Empty loader should build every component")
	}
	if !comp.Tokenizer.Stoplist().IsStop("hai") {
		t.Error("Default stoplist should be used")
	}
	if _, kind := comp.Normalizer.Classify("<image omitted>"); kind != ingest.KindOmitted {
		t.Error("Default media types should be used")
	}
}

func TestLoaderExtendsDefaults(t *testing.T) {
	loader := Loader{
		StoplistPath: writeFile(t, "stoplist.yaml", "terms:\n  - Yaar\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	stops := comp.Tokenizer.Stoplist()
	if !stops.IsStop("yaar") {
		t.Error("Loaded term should be a stopword")
	}
	if !stops.IsStop("hai") {
		t.Error("Baseline should be kept")
	}
	if got := comp.Tokenizer.Clean("Yaar hai goa", nil); got != "goa" {
		t.Errorf("Clean = %q, want %q", got, "goa")
	}
}

func TestLoaderReplacesDefaults(t *testing.T) {
	loader := Loader{
		StoplistPath: writeFile(t, "stoplist.yaml", "replace_defaults: true\nterms:\n  - yaar\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if comp.Tokenizer.Stoplist().IsStop("hai") {
		t.Error("Baseline should be dropped")
	}
	if comp.Tokenizer.Stoplist().Len() != 1 {
		t.Errorf("Expected 1 stopword, got %d", comp.Tokenizer.Stoplist().Len())
	}
}

func TestLoaderMediaTypes(t *testing.T) {
	loader := Loader{
		MediaPath: writeFile(t, "media.yaml", "types:\n  - photo\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	r := comp.Pipeline.Process(ingest.Record{User: "Alice", Message: "<Photo omitted>"})
	if !r.IsOmitted() {
		t.Error("Configured media type should be recognized by the pipeline")
	}
	if _, kind := comp.Normalizer.Classify("<image omitted>"); kind != ingest.KindText {
		t.Error("Configured list should replace the defaults")
	}
}

func TestLoaderNonExistentStoplist(t *testing.T) {
	loader := Loader{StoplistPath: "/nonexistent/stoplist.yaml"}

	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent stoplist")
	}
}

func TestLoaderNonExistentMedia(t *testing.T) {
	loader := Loader{MediaPath: "/nonexistent/media.yaml"}

	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent media file")
	}
}

func TestLoaderComposition(t *testing.T) {
	plain, err := (&Loader{MediaPath: writeFile(t, "media.yaml", "types:\n  - image\n")}).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := plain.Normalizer.Normalize("cafe\u0301"); got != "cafe\u0301" {
		t.Errorf("composition should be off by default, got %q", got)
	}

	composed, err := (&Loader{MediaPath: writeFile(t, "media.yaml", "compose: true\ntypes:\n  - image\n")}).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := composed.Normalizer.Normalize("cafe\u0301"); got != "caf\u00e9" {
		t.Errorf("compose: true should apply NFC, got %q", got)
	}
}
