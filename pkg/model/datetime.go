package model

import (
	"fmt"
	"strconv"
	"time"
)

// Layouts for the naive local date-times used throughout the API. No
// timezone handling: values are parsed and formatted without a zone.
const (
	LayoutDateTime       = "2006-01-02T15:04:05"
	LayoutDateTimeMinute = "2006-01-02T15:04"
	LayoutDate           = "2006-01-02"
)

// LocalDateTime is a timezone-naive date-time with minute precision. It
// marshals to its canonical ISO-8601 local form and accepts input with or
// without a seconds component.
type LocalDateTime struct {
	time.Time
}

func ParseLocalDateTime(s string) (LocalDateTime, error) {
	if t, err := time.Parse(LayoutDateTime, s); err == nil {
		return LocalDateTime{t}, nil
	}
	t, err := time.Parse(LayoutDateTimeMinute, s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("invalid date-time %q: %w", s, err)
	}
	return LocalDateTime{t}, nil
}

func (dt LocalDateTime) String() string {
	return dt.Format(LayoutDateTime)
}

func (dt LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(dt.String())), nil
}

func (dt *LocalDateTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date-time must be a JSON string: %w", err)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// AddDuration returns the date-time shifted forward by d.
func (dt LocalDateTime) AddDuration(d time.Duration) LocalDateTime {
	return LocalDateTime{dt.Add(d)}
}

// OnDate reports whether the date component equals date (compared by
// calendar day, ignoring the time of day).
func (dt LocalDateTime) OnDate(date time.Time) bool {
	y1, m1, d1 := dt.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MinutesOfDay returns the time-of-day component as minutes since midnight.
func (dt LocalDateTime) MinutesOfDay() int {
	return dt.Hour()*60 + dt.Minute()
}
