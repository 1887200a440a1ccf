package analytics

import (
	"sort"
	"strconv"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

// TimelinePoint is the message count of one calendar month.
type TimelinePoint struct {
	Year     int    `json:"year"`
	MonthNum int    `json:"month_num"`
	Month    string `json:"month"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// DailyPoint is the message count of one calendar date.
type DailyPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type monthKey struct {
	year     int
	month    string
	monthNum int
}

// MonthlyTimeline counts messages per (year, month) in chronological order,
// regardless of the order of records.
func MonthlyTimeline(records []ingest.Record) []TimelinePoint {
	index := make(map[monthKey]int)
	out := make([]TimelinePoint, 0)
	for _, r := range records {
		k := monthKey{year: r.Year, month: r.Month, monthNum: r.MonthNum}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, TimelinePoint{
			Year:     r.Year,
			MonthNum: r.MonthNum,
			Month:    r.Month,
			Label:    r.Month + "-" + strconv.Itoa(r.Year),
			Count:    1,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].MonthNum < out[j].MonthNum
	})
	return out
}

// DailyTimeline counts messages per date, oldest first.
func DailyTimeline(records []ingest.Record) []DailyPoint {
	index := make(map[string]int)
	out := make([]DailyPoint, 0)
	for _, r := range records {
		if i, ok := index[r.OnlyDate]; ok {
			out[i].Count++
			continue
		}
		index[r.OnlyDate] = len(out)
		out = append(out, DailyPoint{Date: r.OnlyDate, Count: 1})
	}
	// only_date is YYYY-MM-DD, so lexical order is chronological
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// WeekActivity counts messages per weekday name, busiest first.
func WeekActivity(records []ingest.Record) Points {
	c := newCounter()
	for _, r := range records {
		c.add(r.DayName)
	}
	return c.ranked(0)
}

// MonthActivity counts messages per month name, busiest first.
func MonthActivity(records []ingest.Record) Points {
	c := newCounter()
	for _, r := range records {
		c.add(r.Month)
	}
	return c.ranked(0)
}
