package finance

import (
	"fmt"
	"time"
)

// Dated is any record that carries the instant it was registered at.
type Dated interface {
	OccurredAt() time.Time
}

// Day is a calendar date with no time or zone attached.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDay reads a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DayOf returns the calendar date t falls on in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// Start returns local midnight of the day.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays moves the date by n calendar days.
func (d Day) AddDays(n int) Day {
	t := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Month is a calendar month of a given year.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates a year and a 1-12 month number.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 {
		return Month{}, fmt.Errorf("invalid year %d", year)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the calendar month t falls in in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	y, m, _ := t.In(loc).Date()
	return Month{Year: y, Month: m}
}

// LastDay returns the final calendar day of the month.
func (m Month) LastDay() Day {
	t := time.Date(m.Year, m.Month+1, 0, 12, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (m Month) Contains(d Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FilterByDay keeps the records registered on day, as seen in loc. A nil day
// keeps everything. The comparison uses local calendar components so a sale
// at 23:50 stays on its own day.
func FilterByDay[T Dated](records []T, day *Day, loc *time.Location) []T {
	if day == nil {
		return append([]T(nil), records...)
	}
	var filtered []T
	for _, r := range records {
		if DayOf(r.OccurredAt(), loc) == *day {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByMonth keeps the records registered during month, as seen in loc.
func FilterByMonth[T Dated](records []T, month Month, loc *time.Location) []T {
	var filtered []T
	for _, r := range records {
		if MonthOf(r.OccurredAt(), loc) == month {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
