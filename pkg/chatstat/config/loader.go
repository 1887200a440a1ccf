package config

import (
	"fmt"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	StoplistPath string
	MediaPath    string
}

// Components holds all loaded configuration components
type Components struct {
	Normalizer *ingest.Normalizer
	Tokenizer  *ingest.Tokenizer
	Pipeline   *ingest.Pipeline
}

// Load reads all configuration files and returns initialized components.
// Empty paths keep the built-in defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load stoplist
	stops := stoplist.Default()
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		if sl.ReplaceDefaults {
			stops = stoplist.NewManager(sl.Terms)
		} else {
			stops = stoplist.Merge(stops, stoplist.NewManager(sl.Terms))
		}
	}
	comp.Tokenizer = ingest.NewTokenizer(stops)

	// Load media types
	var mediaTypes []string
	var opts []ingest.NormalizerOption
	if l.MediaPath != "" {
		media, err := LoadMedia(l.MediaPath)
		if err != nil {
			return nil, fmt.Errorf("load media types: %w", err)
		}
		mediaTypes = media.Types
		if media.Compose {
			opts = append(opts, ingest.WithComposition())
		}
	}
	comp.Normalizer = ingest.NewNormalizer(mediaTypes, opts...)

	comp.Pipeline = ingest.NewPipeline(comp.Normalizer, comp.Tokenizer)
	return comp, nil
}
