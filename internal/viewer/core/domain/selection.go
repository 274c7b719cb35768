package domain

import (
	"errors"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
)

var ErrInvalidSelection = errors.New("invalid brush selection")

// Selection is a closed time interval picked on the timeline. Its bounds are
// instants, not dates: a brush inverted from pixels usually lands between
// two calendar days.
type Selection struct {
	From time.Time
	To   time.Time
}

// NewSelection orders the bounds so From <= To.
func NewSelection(a, b time.Time) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{From: a, To: b}
}

func DateSelection(from, to dataset.CalendarDate) Selection {
	return NewSelection(from.Time(), to.Time())
}

// Contains reports whether the date's midnight falls inside the interval.
func (s Selection) Contains(d dataset.CalendarDate) bool {
	t := d.Time()
	return !t.Before(s.From) && !t.After(s.To)
}

// TimeScale maps the full date extent onto the timeline's pixel width.
type TimeScale struct {
	Start time.Time
	End   time.Time
	Width float64
}

func NewTimeScale(dates dataset.DateSequence, width float64) TimeScale {
	first, _ := dates.First()
	last, _ := dates.Last()
	return TimeScale{Start: first.Time(), End: last.Time(), Width: width}
}

// Invert converts a pixel offset to an instant. Offsets are clamped to
// [0, Width], so the result always lies in [Start, End].
func (s TimeScale) Invert(px float64) time.Time {
	if s.Width <= 0 {
		return s.Start
	}
	px = min(max(px, 0), s.Width)
	span := s.End.Sub(s.Start)
	return s.Start.Add(time.Duration(float64(span) * px / s.Width))
}

// Position is the inverse of Invert.
func (s TimeScale) Position(t time.Time) float64 {
	span := s.End.Sub(s.Start)
	if span <= 0 {
		return 0
	}
	return s.Width * float64(t.Sub(s.Start)) / float64(span)
}

// PixelSelection builds a Selection from brush pixel coordinates.
func (s TimeScale) PixelSelection(x0, x1 float64) (Selection, error) {
	if s.Width <= 0 {
		return Selection{}, ErrInvalidSelection
	}
	return NewSelection(s.Invert(x0), s.Invert(x1)), nil
}
