package report

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/chatstat/pkg/chatstat/analytics"
	"github.com/cognicore/chatstat/pkg/chatstat/filter"
	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/wordcloud"
)

// Builder assembles every analytics view of one scope into a Report.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy

	links    analytics.LinkCounter
	topUsers int
	topWords int
	cloud    *wordcloud.Producer
}

// Options configures a Builder. Zero values use the analytics defaults.
type Options struct {
	Links     analytics.LinkCounter
	TopUsers  int
	TopWords  int
	WordCloud *wordcloud.Producer
}

// New creates a new report builder
func New(opts Options) *Builder {
	if opts.WordCloud == nil {
		opts.WordCloud = wordcloud.New(wordcloud.DefaultOptions())
	}
	return &Builder{
		entropy:  ulid.Monotonic(rand.Reader, 0),
		links:    opts.Links,
		topUsers: opts.TopUsers,
		topWords: opts.TopWords,
		cloud:    opts.WordCloud,
	}
}

// Report is the full analytics result for one scope.
type Report struct {
	ID    string `json:"id"`
	Scope string `json:"scope"`

	Stats   analytics.Stats           `json:"stats"`
	Monthly []analytics.TimelinePoint `json:"monthly_timeline"`
	Daily   []analytics.DailyPoint    `json:"daily_timeline"`
	Week    analytics.Points          `json:"week_activity"`
	Month   analytics.Points          `json:"month_activity"`
	Heatmap analytics.Heatmap         `json:"activity_heatmap"`

	// BusyUsers is only set for the overall scope.
	BusyUsers *analytics.BusyUsers   `json:"busy_users,omitempty"`
	Words     []analytics.WordCount  `json:"common_words"`
	Emojis    []analytics.EmojiCount `json:"emojis"`
	WordCloud *wordcloud.Input       `json:"word_cloud,omitempty"`
	CloudFreq []wordcloud.Frequency  `json:"word_cloud_frequencies,omitempty"`
}

// Build computes the report of records, which must already be scoped to
// scope. Apart from ID the result depends only on its inputs.
func (b *Builder) Build(scope string, records []ingest.Record) Report {
	r := Report{
		ID:      b.newID(),
		Scope:   scope,
		Stats:   analytics.ComputeStats(records, b.links),
		Monthly: analytics.MonthlyTimeline(records),
		Daily:   analytics.DailyTimeline(records),
		Week:    analytics.WeekActivity(records),
		Month:   analytics.MonthActivity(records),
		Heatmap: analytics.ActivityHeatmap(records),
		Words:   analytics.MostCommonWords(records, b.topWords),
		Emojis:  analytics.Emojis(records, nil),
	}
	if scope == filter.Overall {
		busy := analytics.MostBusyUsers(records, b.topUsers)
		r.BusyUsers = &busy
	}
	if in, ok := b.cloud.Input(records); ok {
		r.WordCloud = &in
		r.CloudFreq = wordcloud.Frequencies(in.Text)
	}
	return r
}

func (b *Builder) newID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ulid.MustNew(ulid.Now(), b.entropy).String()
}
