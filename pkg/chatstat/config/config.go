// Package config loads the YAML data files that tune text preparation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/chatstat/pkg/chatstat/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
	// ReplaceDefaults drops the built-in baseline instead of extending it.
	ReplaceDefaults bool `yaml:"replace_defaults"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	var sl Stoplist
	if err := readYAML(path, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

// Media lists the attachment words recognized in "<x> omitted" lines.
type Media struct {
	Types []string `yaml:"types"`
	// Compose applies Unicode NFC to message text after cleaning.
	Compose bool `yaml:"compose"`
}

// LoadMedia loads media placeholder types from a YAML file
func LoadMedia(path string) (*Media, error) {
	var m Media
	if err := readYAML(path, &m); err != nil {
		return nil, err
	}
	if len(m.Types) == 0 {
		return nil, fmt.Errorf("%w: %s lists no media types", internalerr.ErrInvalidConfig, path)
	}
	return &m, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	return nil
}
