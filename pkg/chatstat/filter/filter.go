// Package filter selects the record subsets the analytics run on.
package filter

import (
	"sort"
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

// Overall selects the whole conversation.
const Overall = "overall"

// Scope returns the records visible for selected: every record for Overall,
// otherwise only the records sent by that user. An unknown user yields an
// empty, non-nil slice. The result never aliases records.
func Scope(records []ingest.Record, selected string) []ingest.Record {
	out := make([]ingest.Record, 0, len(records))
	if selected == Overall {
		return append(out, records...)
	}
	for _, r := range records {
		if r.User == selected {
			out = append(out, r)
		}
	}
	return out
}

// TextOnly keeps the records usable for word analytics: no group
// notifications, no omitted media and a non-blank clean text.
func TextOnly(records []ingest.Record) []ingest.Record {
	out := make([]ingest.Record, 0, len(records))
	for _, r := range records {
		if r.IsSystem() || r.IsOmitted() {
			continue
		}
		if strings.TrimSpace(r.MessageClean) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Participants returns the distinct users of records in first-seen order.
func Participants(records []ingest.Record) []string {
	seen := make(map[string]struct{})
	var users []string
	for _, r := range records {
		if _, ok := seen[r.User]; ok {
			continue
		}
		seen[r.User] = struct{}{}
		users = append(users, r.User)
	}
	return users
}

// Users returns the selectable scopes: Overall followed by every
// participant except the system marker, sorted.
func Users(records []ingest.Record) []string {
	var users []string
	for _, u := range Participants(records) {
		if (ingest.Record{User: u}).IsSystem() {
			continue
		}
		users = append(users, u)
	}
	sort.Strings(users)
	return append([]string{Overall}, users...)
}
