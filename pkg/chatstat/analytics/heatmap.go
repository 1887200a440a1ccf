package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

// Heatmap is a weekday × hour-bucket message count table. Rows and columns
// hold only observed values; every cell is present.
type Heatmap struct {
	Days    []string `json:"days"`
	Periods []string `json:"periods"`
	Cells   [][]int  `json:"cells"`
}

// Count returns the cell for day and period, 0 when either is absent.
func (h Heatmap) Count(day, period string) int {
	row, col := -1, -1
	for i, d := range h.Days {
		if d == day {
			row = i
			break
		}
	}
	for j, p := range h.Periods {
		if p == period {
			col = j
			break
		}
	}
	if row < 0 || col < 0 {
		return 0
	}
	return h.Cells[row][col]
}

var weekdayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// ActivityHeatmap counts messages per (day_name, period). Days are ordered
// Monday to Sunday with unrecognized names after them; periods are ordered by
// their starting hour ("9-10" before "14-15").
func ActivityHeatmap(records []ingest.Record) Heatmap {
	type cell struct{ day, period string }
	counts := make(map[cell]int)
	var days, periods []string
	seenDay := make(map[string]struct{})
	seenPeriod := make(map[string]struct{})

	for _, r := range records {
		counts[cell{r.DayName, r.Period}]++
		if _, ok := seenDay[r.DayName]; !ok {
			seenDay[r.DayName] = struct{}{}
			days = append(days, r.DayName)
		}
		if _, ok := seenPeriod[r.Period]; !ok {
			seenPeriod[r.Period] = struct{}{}
			periods = append(periods, r.Period)
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		return dayRank(days[i]) < dayRank(days[j])
	})
	sort.SliceStable(periods, func(i, j int) bool {
		return periodStart(periods[i]) < periodStart(periods[j])
	})

	h := Heatmap{
		Days:    make([]string, len(days)),
		Periods: make([]string, len(periods)),
		Cells:   make([][]int, len(days)),
	}
	copy(h.Days, days)
	copy(h.Periods, periods)
	for i, d := range days {
		h.Cells[i] = make([]int, len(periods))
		for j, p := range periods {
			h.Cells[i][j] = counts[cell{d, p}]
		}
	}
	return h
}

func dayRank(day string) int {
	if i, ok := weekdayOrder[strings.ToLower(strings.TrimSpace(day))]; ok {
		return i
	}
	return len(weekdayOrder)
}

// periodStart parses the leading hour of a bucket label like "14-15".
// Labels without one sort last.
func periodStart(period string) int {
	head, _, _ := strings.Cut(strings.TrimSpace(period), "-")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 1 << 30
	}
	return n
}
