// Command chatstat prints analytics for an exported chat log.
//
// Usage:
//
//	chatstat users     --input chat.jsonl
//	chatstat stats     --input chat.jsonl --user overall
//	chatstat report    --input chat.jsonl --user Alice
//	chatstat wordcloud --input chat.jsonl --user overall --out words.txt
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/chatstat/internal/config"
	"github.com/cognicore/chatstat/internal/export"
	"github.com/cognicore/chatstat/internal/logging"
	"github.com/cognicore/chatstat/pkg/chatstat"
	cfgfiles "github.com/cognicore/chatstat/pkg/chatstat/config"
	"github.com/cognicore/chatstat/pkg/chatstat/filter"
	"github.com/cognicore/chatstat/pkg/chatstat/wordcloud"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "chatstat",
		Short:        "Descriptive analytics for exported chat logs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to chatstat.yaml (default: ./chatstat.yaml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or text")

	root.AddCommand(usersCmd(a))
	root.AddCommand(statsCmd(a))
	root.AddCommand(reportCmd(a))
	root.AddCommand(wordcloudCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// buildAnalyzer wires the data-file components and settings into an Analyzer.
func buildAnalyzer(cfg *config.Config, logger *zap.Logger) (*chatstat.Analyzer, error) {
	loader := cfgfiles.Loader{
		StoplistPath: cfg.StoplistPath,
		MediaPath:    cfg.MediaPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return chatstat.New(chatstat.Options{
		Pipeline: comp.Pipeline,
		WordCloud: wordcloud.New(wordcloud.Options{
			Width:       cfg.WordCloud.Width,
			Height:      cfg.WordCloud.Height,
			Background:  cfg.WordCloud.Background,
			MinFontSize: cfg.WordCloud.MinFontSize,
		}),
		TopUsers: cfg.TopUsers,
		TopWords: cfg.TopWords,
		Logger:   logger,
	}), nil
}

// session loads input and prepares it.
func (a *app) session(input string) (*chatstat.Session, error) {
	analyzer, err := buildAnalyzer(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	records, err := export.LoadFromJSONL(input, a.logger)
	if err != nil {
		return nil, err
	}
	return analyzer.Load(records), nil
}

func inputFlag(cmd *cobra.Command, input *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "JSONL file produced by the chat-log parser")
	_ = cmd.MarkFlagRequired("input")
}

func userFlag(cmd *cobra.Command, user *string) {
	cmd.Flags().StringVarP(user, "user", "u", filter.Overall, `participant to analyze, or "overall"`)
}

func usersCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the selectable scopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(input)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s.Users())
		},
	}
	inputFlag(cmd, &input)
	return cmd
}

func statsCmd(a *app) *cobra.Command {
	var input, user string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print message, word, media and link totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(input)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s.Stats(user))
		},
	}
	inputFlag(cmd, &input)
	userFlag(cmd, &user)
	return cmd
}

func reportCmd(a *app) *cobra.Command {
	var input, user string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the full analytics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(input)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s.Report(user))
		},
	}
	inputFlag(cmd, &input)
	userFlag(cmd, &user)
	return cmd
}

func wordcloudCmd(a *app) *cobra.Command {
	var input, user, out string
	cmd := &cobra.Command{
		Use:   "wordcloud",
		Short: "Write the word-cloud input text",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(input)
			if err != nil {
				return err
			}
			text, ok := s.WordCloudText(user)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no content")
				return nil
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("word cloud text written", zap.String("path", out), zap.String("scope", user))
			return nil
		},
	}
	inputFlag(cmd, &input)
	userFlag(cmd, &user)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
