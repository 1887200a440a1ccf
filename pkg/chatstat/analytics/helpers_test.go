package analytics

import (
	"fmt"
	"time"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

// rec builds a prepared record dated at ts.
func rec(user, msg string, ts time.Time) ingest.Record {
	r := ingest.Record{
		Date:     ts,
		User:     user,
		Message:  msg,
		Year:     ts.Year(),
		Month:    ts.Month().String(),
		MonthNum: int(ts.Month()),
		OnlyDate: ts.Format(ingest.DateLayout),
		DayName:  ts.Weekday().String(),
		Period:   period(ts.Hour()),
	}
	return ingest.NewPipeline(nil, nil).Process(r)
}

func period(h int) string {
	return fmt.Sprintf("%02d-%02d", h, (h+1)%24)
}

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}
