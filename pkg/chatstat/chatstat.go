// Package chatstat computes descriptive analytics over exported chat logs.
//
// An Analyzer prepares raw records once into an immutable Session; every
// Session method scopes a fresh copy of the prepared records to either the
// whole conversation (filter.Overall) or a single participant.
package chatstat

import (
	"context"
	"image"

	"go.uber.org/zap"

	"github.com/cognicore/chatstat/pkg/chatstat/analytics"
	"github.com/cognicore/chatstat/pkg/chatstat/filter"
	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/report"
	"github.com/cognicore/chatstat/pkg/chatstat/wordcloud"
)

// Analyzer is the main entry point
type Analyzer struct {
	pipeline *ingest.Pipeline
	builder  *report.Builder
	cloud    *wordcloud.Producer
	links    analytics.LinkCounter
	topUsers int
	topWords int
	logger   *zap.Logger
}

// Options configures an Analyzer. Zero values fall back to defaults.
type Options struct {
	Pipeline  *ingest.Pipeline
	Links     analytics.LinkCounter
	WordCloud *wordcloud.Producer
	TopUsers  int
	TopWords  int
	Logger    *zap.Logger
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	if opts.Pipeline == nil {
		opts.Pipeline = ingest.NewPipeline(nil, nil)
	}
	if opts.WordCloud == nil {
		opts.WordCloud = wordcloud.New(wordcloud.DefaultOptions())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Analyzer{
		pipeline: opts.Pipeline,
		builder: report.New(report.Options{
			Links:     opts.Links,
			TopUsers:  opts.TopUsers,
			TopWords:  opts.TopWords,
			WordCloud: opts.WordCloud,
		}),
		cloud:    opts.WordCloud,
		links:    opts.Links,
		topUsers: opts.TopUsers,
		topWords: opts.TopWords,
		logger:   opts.Logger,
	}
}

// Load prepares records and returns a session over the prepared copies.
// records itself is not modified.
func (a *Analyzer) Load(records []ingest.Record) *Session {
	prepared := a.pipeline.Prepare(records)
	a.logger.Debug("session loaded",
		zap.Int("records", len(prepared)),
		zap.Int("participants", len(filter.Participants(prepared))))
	return &Session{analyzer: a, records: prepared}
}

// Session is a prepared, read-only record set.
type Session struct {
	analyzer *Analyzer
	records  []ingest.Record
}

// Len returns the number of prepared records.
func (s *Session) Len() int { return len(s.records) }

// Records returns a copy of the prepared records.
func (s *Session) Records() []ingest.Record {
	return filter.Scope(s.records, filter.Overall)
}

// Users lists the selectable scopes: "overall" then every participant.
func (s *Session) Users() []string {
	return filter.Users(s.records)
}

func (s *Session) scope(user string) []ingest.Record {
	return filter.Scope(s.records, user)
}

// Stats returns the totals of user's messages.
func (s *Session) Stats(user string) analytics.Stats {
	return analytics.ComputeStats(s.scope(user), s.analyzer.links)
}

// MonthlyTimeline returns message counts per month, oldest first.
func (s *Session) MonthlyTimeline(user string) []analytics.TimelinePoint {
	return analytics.MonthlyTimeline(s.scope(user))
}

// DailyTimeline returns message counts per date, oldest first.
func (s *Session) DailyTimeline(user string) []analytics.DailyPoint {
	return analytics.DailyTimeline(s.scope(user))
}

// WeekActivity returns message counts per weekday, busiest first.
func (s *Session) WeekActivity(user string) analytics.Points {
	return analytics.WeekActivity(s.scope(user))
}

// MonthActivity returns message counts per month name, busiest first.
func (s *Session) MonthActivity(user string) analytics.Points {
	return analytics.MonthActivity(s.scope(user))
}

// ActivityHeatmap returns the weekday by hour-period grid.
func (s *Session) ActivityHeatmap(user string) analytics.Heatmap {
	return analytics.ActivityHeatmap(s.scope(user))
}

// MostBusyUsers ranks the participants of the whole conversation.
func (s *Session) MostBusyUsers() analytics.BusyUsers {
	return analytics.MostBusyUsers(s.records, s.analyzer.topUsers)
}

// MostCommonWords ranks the words of user's text messages.
func (s *Session) MostCommonWords(user string) []analytics.WordCount {
	return analytics.MostCommonWords(s.scope(user), s.analyzer.topWords)
}

// Emojis ranks the emoji of user's messages.
func (s *Session) Emojis(user string) []analytics.EmojiCount {
	return analytics.Emojis(s.scope(user), nil)
}

// WordCloudText returns the word-cloud input text for user; ok is false when
// there is nothing to draw.
func (s *Session) WordCloudText(user string) (string, bool) {
	return s.analyzer.cloud.Text(s.scope(user))
}

// WordCloud renders user's word cloud with r. A nil image with a nil error
// means there was no content.
func (s *Session) WordCloud(ctx context.Context, r wordcloud.Rasterizer, user string) (image.Image, error) {
	return s.analyzer.cloud.Generate(ctx, r, s.scope(user))
}

// Report builds the full report for user.
func (s *Session) Report(user string) report.Report {
	rep := s.analyzer.builder.Build(user, s.scope(user))
	s.analyzer.logger.Debug("report built",
		zap.String("id", rep.ID),
		zap.String("scope", user),
		zap.Int("messages", rep.Stats.Messages))
	return rep
}
