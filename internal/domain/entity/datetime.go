package entity

import (
	"fmt"
	"time"
)

// DateTimeDim is one row of the precomputed calendar dimension. The id is
// supplied by the caller (unix seconds by convention, but any scheme works
// as long as facts and calendar agree). Every other field is derived from
// Datetime and must stay consistent with it; the store never recomputes
// them, it only verifies.
type DateTimeDim struct {
	DatetimeID   int64     `json:"datetimeId" gorm:"column:datetime_id;primaryKey;autoIncrement:false" validate:"required"`
	Datetime     time.Time `json:"datetime" gorm:"column:datetime;not null" validate:"required"`
	Epoch        int64     `json:"epoch" gorm:"column:epoch;not null"`
	DayOfWeek    int       `json:"dayOfWeek" gorm:"column:day_of_week;not null" validate:"gte=1,lte=7"`
	DayOfMonth   int       `json:"dayOfMonth" gorm:"column:day_of_month;not null" validate:"gte=1,lte=31"`
	DayOfYear    int       `json:"dayOfYear" gorm:"column:day_of_year;not null" validate:"gte=1,lte=366"`
	WeekOfMonth  int       `json:"weekOfMonth" gorm:"column:week_of_month;not null" validate:"gte=1,lte=5"`
	WeekOfYear   int       `json:"weekOfYear" gorm:"column:week_of_year;not null" validate:"gte=1,lte=53"`
	Month        int       `json:"month" gorm:"column:month_;not null" validate:"gte=1,lte=12"`
	Quarter      int       `json:"quarter" gorm:"column:quarter_;not null" validate:"gte=1,lte=4"`
	Year         int       `json:"year" gorm:"column:year;not null" validate:"required"`
	StartOfWeek  time.Time `json:"startOfWeek" gorm:"column:start_of_week;not null" validate:"required"`
	StartOfMonth time.Time `json:"startOfMonth" gorm:"column:start_of_month;not null" validate:"required"`
	IsWeekend    bool      `json:"isWeekend" gorm:"column:is_weekend;not null"`
	Hour         int       `json:"hour" gorm:"column:hour;not null" validate:"gte=0,lte=23"`
	Minute       int       `json:"minute" gorm:"column:minute;not null" validate:"gte=0,lte=59"`
}

func (DateTimeDim) TableName() string { return "datetime_dim" }

// NewDateTimeDim derives a fully consistent calendar row for t.
// Day-of-week follows ISO-8601 (Monday=1 .. Sunday=7), as does week-of-year.
// Week-of-month counts completed seven-day blocks within the month.
func NewDateTimeDim(id int64, t time.Time) DateTimeDim {
	t = t.UTC()
	_, week := t.ISOWeek()
	return DateTimeDim{
		DatetimeID:   id,
		Datetime:     t,
		Epoch:        t.Unix(),
		DayOfWeek:    isoWeekday(t),
		DayOfMonth:   t.Day(),
		DayOfYear:    t.YearDay(),
		WeekOfMonth:  (t.Day()-1)/7 + 1,
		WeekOfYear:   week,
		Month:        int(t.Month()),
		Quarter:      (int(t.Month())-1)/3 + 1,
		Year:         t.Year(),
		StartOfWeek:  startOfDay(t.AddDate(0, 0, 1-isoWeekday(t))),
		StartOfMonth: startOfDay(t.AddDate(0, 0, 1-t.Day())),
		IsWeekend:    isoWeekday(t) >= 6,
		Hour:         t.Hour(),
		Minute:       t.Minute(),
	}
}

// CheckConsistent verifies every derived field against Datetime and reports
// the first mismatch. A nil result means the row honors the calendar
// invariant.
func (d DateTimeDim) CheckConsistent() error {
	want := NewDateTimeDim(d.DatetimeID, d.Datetime)
	checks := []struct {
		field string
		got   any
		want  any
	}{
		{"epoch", d.Epoch, want.Epoch},
		{"dayOfWeek", d.DayOfWeek, want.DayOfWeek},
		{"dayOfMonth", d.DayOfMonth, want.DayOfMonth},
		{"dayOfYear", d.DayOfYear, want.DayOfYear},
		{"weekOfMonth", d.WeekOfMonth, want.WeekOfMonth},
		{"weekOfYear", d.WeekOfYear, want.WeekOfYear},
		{"month", d.Month, want.Month},
		{"quarter", d.Quarter, want.Quarter},
		{"year", d.Year, want.Year},
		{"startOfWeek", startOfDay(d.StartOfWeek.UTC()), want.StartOfWeek},
		{"startOfMonth", startOfDay(d.StartOfMonth.UTC()), want.StartOfMonth},
		{"isWeekend", d.IsWeekend, want.IsWeekend},
		{"hour", d.Hour, want.Hour},
		{"minute", d.Minute, want.Minute},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("calendar field %s = %v, inconsistent with datetime %s (want %v)",
				c.field, c.got, d.Datetime.UTC().Format(time.RFC3339), c.want)
		}
	}
	return nil
}

// isoWeekday maps time.Weekday to ISO-8601 numbering (Monday=1 .. Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
