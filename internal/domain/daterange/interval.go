package daterange

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: end must be after start")
)

// ParseError reports a malformed wire interval literal.
type ParseError struct {
	Literal string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("daterange: cannot parse %q: %s", e.Literal, e.Reason)
}

const wireDateLayout = "2006-01-02"

// Interval represents a half-open calendar-day range [Start, End).
// Both bounds are normalized to midnight UTC of their wall-clock day.
type Interval struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Interval, error) {
	iv := Interval{Start: Normalize(start), End: Normalize(end)}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (iv Interval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return ErrInvalidRange
	}
	if !iv.End.After(iv.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Normalize strips the time-of-day and timezone offset from t, pinning the
// wall-clock calendar day observed in t's own location to midnight UTC.
// Every externally obtained date goes through this before any comparison,
// otherwise UTC/local skew shifts days at the boundaries.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey renders t as the YYYYMMDD key used by the day index.
func DayKey(t time.Time) string {
	return Normalize(t).Format("20060102")
}

// Parse reads a wire interval literal such as "[2024-06-10,2024-06-15)".
// The lower bound is always inclusive. An upper bound closed with ']' is
// inclusive and gets normalized to the exclusive form by adding one day, so
// every Interval in the program carries the same convention.
func Parse(literal string) (Interval, error) {
	raw := strings.TrimSpace(literal)
	if len(raw) < 2 {
		return Interval{}, &ParseError{Literal: literal, Reason: "too short"}
	}
	if raw[0] != '[' {
		return Interval{}, &ParseError{Literal: literal, Reason: "missing opening bracket"}
	}
	closing := raw[len(raw)-1]
	if closing != ')' && closing != ']' {
		return Interval{}, &ParseError{Literal: literal, Reason: "missing closing bracket"}
	}
	body := raw[1 : len(raw)-1]
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Interval{}, &ParseError{Literal: literal, Reason: "expected two comma-separated bounds"}
	}
	start, err := parseWireDate(parts[0])
	if err != nil {
		return Interval{}, &ParseError{Literal: literal, Reason: "bad lower bound: " + err.Error()}
	}
	end, err := parseWireDate(parts[1])
	if err != nil {
		return Interval{}, &ParseError{Literal: literal, Reason: "bad upper bound: " + err.Error()}
	}
	if closing == ']' {
		end = end.AddDate(0, 0, 1)
	}
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, &ParseError{Literal: literal, Reason: "empty or inverted range"}
	}
	return iv, nil
}

func parseWireDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(wireDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// WireLiteral serializes the interval back to the store's range notation,
// always in the canonical exclusive-upper-bound form.
func (iv Interval) WireLiteral() string {
	return fmt.Sprintf("[%s,%s)", iv.Start.Format(wireDateLayout), iv.End.Format(wireDateLayout))
}

// ContainsDay reports whether the calendar day of t falls inside [Start, End).
func (iv Interval) ContainsDay(t time.Time) bool {
	d := Normalize(t)
	return !d.Before(iv.Start) && d.Before(iv.End)
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Nights is the number of distinct days in [Start, End).
func (iv Interval) Nights() int {
	return int(iv.End.Sub(iv.Start) / (24 * time.Hour))
}

// Days iterates over every day in [Start, End). The sequence is restartable
// and never mutates the interval; each step yields a fresh value.
func (iv Interval) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := iv.Start; d.Before(iv.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Equal compares intervals day-for-day.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}
