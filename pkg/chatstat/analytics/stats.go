package analytics

import (
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/links"
)

// LinkCounter counts URL-like substrings in a message.
type LinkCounter interface {
	Count(s string) int
}

// Stats holds the scalar totals of a record set.
type Stats struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// ComputeStats totals records. Omitted-media records count as media and
// contribute no words. A nil counter uses links.NewFinder.
func ComputeStats(records []ingest.Record, lc LinkCounter) Stats {
	if lc == nil {
		lc = links.NewFinder()
	}
	s := Stats{Messages: len(records)}
	for _, r := range records {
		if r.IsOmitted() {
			s.Media++
			continue
		}
		s.Words += len(strings.Fields(r.Message))
		s.Links += lc.Count(r.Message)
	}
	return s
}
