// Package config manages chatstat settings from defaults, an optional
// chatstat.yaml and CHATSTAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cognicore/chatstat/pkg/chatstat/internalerr"
)

// EnvPrefix prefixes every environment override, e.g. CHATSTAT_TOP_WORDS.
const EnvPrefix = "CHATSTAT"

var defaults = map[string]any{
	"log_level":               "info",
	"log_format":              "json",
	"stoplist_path":           "",
	"media_path":              "",
	"top_words":               20,
	"top_users":               5,
	"wordcloud.width":         500,
	"wordcloud.height":        500,
	"wordcloud.background":    "white",
	"wordcloud.min_font_size": 10,
}

// Config defines the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"  validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json text"`

	StoplistPath string `mapstructure:"stoplist_path"`
	MediaPath    string `mapstructure:"media_path"`

	TopWords int `mapstructure:"top_words" validate:"min=1,max=1000"`
	TopUsers int `mapstructure:"top_users" validate:"min=1,max=1000"`

	WordCloud WordCloudConfig `mapstructure:"wordcloud"`
}

// WordCloudConfig holds the rasterizer settings passed through with the
// word-cloud text.
type WordCloudConfig struct {
	Width       int    `mapstructure:"width"         validate:"min=1,max=10000"`
	Height      int    `mapstructure:"height"        validate:"min=1,max=10000"`
	Background  string `mapstructure:"background"    validate:"required"`
	MinFontSize int    `mapstructure:"min_font_size" validate:"min=1"`
}

// Load reads configuration in order of precedence: environment, the file at
// path (or chatstat.yaml in the working directory when path is empty, which
// may be absent), then defaults. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", internalerr.ErrInvalidConfig, path, err)
		}
	} else {
		v.SetConfigName("chatstat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: read config: %v", internalerr.ErrInvalidConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return nil
}
