package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/cognicore/chatstat/pkg/chatstat/internalerr"
)

// SystemUser marks group-notification rows (joins, leaves, subject changes).
const SystemUser = "group_notification"

// Omitted is the display form of a media-omission line. Code that needs to
// know whether a record is media checks Kind, not this string.
const Omitted = "<OMITTED>"

// DateLayout is the layout of Record.OnlyDate.
const DateLayout = "2006-01-02"

// Kind tags what a normalized message represents.
type Kind int

const (
	// KindText is ordinary message text.
	KindText Kind = iota
	// KindOmitted is a media attachment the export left out.
	KindOmitted
)

func (k Kind) String() string {
	switch k {
	case KindOmitted:
		return "omitted"
	default:
		return "text"
	}
}

// Record is one parsed chat line with its calendar attributes.
type Record struct {
	Date         time.Time `json:"date,omitempty"`
	User         string    `json:"user"`
	Message      string    `json:"message"`
	Kind         Kind      `json:"-"`
	MessageClean string    `json:"-"`

	Year     int    `json:"year"`
	Month    string `json:"month"`
	MonthNum int    `json:"month_num"`
	OnlyDate string `json:"only_date"`
	DayName  string `json:"day_name"`
	Period   string `json:"period"`
}

// IsSystem reports whether the record is a group notification.
func (r Record) IsSystem() bool {
	u := strings.ToLower(strings.TrimSpace(r.User))
	return u == SystemUser || u == "group notification"
}

// IsOmitted reports whether the record stands for an omitted media file.
func (r Record) IsOmitted() bool {
	return r.Kind == KindOmitted
}

// FillCalendar derives the calendar fields left empty from Date. Records
// without a timestamp are returned unchanged.
func (r *Record) FillCalendar() {
	if r.Date.IsZero() {
		return
	}
	if r.Year == 0 {
		r.Year = r.Date.Year()
	}
	if r.MonthNum == 0 {
		r.MonthNum = int(r.Date.Month())
	}
	if r.Month == "" {
		r.Month = r.Date.Month().String()
	}
	if r.OnlyDate == "" {
		r.OnlyDate = r.Date.Format(DateLayout)
	}
	if r.DayName == "" {
		r.DayName = r.Date.Weekday().String()
	}
	if r.Period == "" {
		h := r.Date.Hour()
		r.Period = fmt.Sprintf("%02d-%02d", h, (h+1)%24)
	}
}

// Validate checks the fields the analytics rely on.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.User) == "" {
		return fmt.Errorf("%w: record user is required", internalerr.ErrInvalidInput)
	}
	if r.MonthNum < 1 || r.MonthNum > 12 {
		return fmt.Errorf("%w: month_num %d out of range", internalerr.ErrInvalidInput, r.MonthNum)
	}
	if strings.TrimSpace(r.Month) == "" {
		return fmt.Errorf("%w: record month is required", internalerr.ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, r.OnlyDate); err != nil {
		return fmt.Errorf("%w: only_date %q: %v", internalerr.ErrInvalidInput, r.OnlyDate, err)
	}
	if strings.TrimSpace(r.DayName) == "" {
		return fmt.Errorf("%w: record day_name is required", internalerr.ErrInvalidInput)
	}
	return nil
}
