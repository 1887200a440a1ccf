package analytics

import (
	"math"
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/filter"
	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/stoplist"
)

// Ranking defaults used when a caller passes limit <= 0.
const (
	DefaultTopUsers = 5
	DefaultTopWords = 20
)

// UserCount is a participant's message count.
type UserCount struct {
	User  string `json:"user"`
	Count int    `json:"count"`
}

// UserShare is a participant's share of all messages, in percent.
type UserShare struct {
	User    string  `json:"user"`
	Percent float64 `json:"percent"`
}

// BusyUsers ranks participants by message count.
type BusyUsers struct {
	Top    []UserCount `json:"top"`
	Shares []UserShare `json:"shares"`
}

// WordCount is a word and how often it occurs.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MostBusyUsers returns the top limit participants by message count and the
// percentage share of every participant, rounded to two decimals. Ties keep
// first-seen order. Group notifications are counted like any other user;
// scope them out beforehand if they should not be.
func MostBusyUsers(records []ingest.Record, limit int) BusyUsers {
	if limit <= 0 {
		limit = DefaultTopUsers
	}
	c := newCounter()
	for _, r := range records {
		c.add(r.User)
	}
	all := c.ranked(0)
	total := float64(c.total())

	out := BusyUsers{
		Top:    make([]UserCount, 0, limit),
		Shares: make([]UserShare, 0, len(all)),
	}
	for i, p := range all {
		if i < limit {
			out.Top = append(out.Top, UserCount{User: p.Label, Count: p.Count})
		}
		out.Shares = append(out.Shares, UserShare{
			User:    p.Label,
			Percent: roundTo(float64(p.Count)/total*100, 2),
		})
	}
	return out
}

// MostCommonWords ranks the words of the clean text. Only text records are
// considered, and the name tokens of every participant left in that set are
// dropped so people do not top their own chart. Returns an empty slice when
// no word survives.
func MostCommonWords(records []ingest.Record, limit int) []WordCount {
	if limit <= 0 {
		limit = DefaultTopWords
	}
	text := filter.TextOnly(records)
	names := stoplist.FromNames(filter.Participants(text))

	c := newCounter()
	for _, r := range text {
		for _, tok := range strings.Fields(r.MessageClean) {
			if names.IsStop(tok) {
				continue
			}
			c.add(tok)
		}
	}

	ranked := c.ranked(limit)
	out := make([]WordCount, len(ranked))
	for i, p := range ranked {
		out[i] = WordCount{Word: p.Label, Count: p.Count}
	}
	return out
}

func roundTo(v float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(v*factor) / factor
}
