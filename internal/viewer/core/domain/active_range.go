package domain

import (
	dataset "regional-metrics-viewer/internal/dataset/core/domain"
)

// ActiveRange is the contiguous run of dates currently on display. Values are
// snapshots: a new brush produces a new ActiveRange, never an edit.
type ActiveRange struct {
	dates dataset.DateSequence
}

func (r ActiveRange) Len() int    { return len(r.dates) }
func (r ActiveRange) Empty() bool { return len(r.dates) == 0 }

// At returns the date at frame index i.
func (r ActiveRange) At(i int) (dataset.CalendarDate, bool) {
	if i < 0 || i >= len(r.dates) {
		return dataset.CalendarDate{}, false
	}
	return r.dates[i], true
}

// SliderMax is the upper slider bound; -1 when the range is empty.
func (r ActiveRange) SliderMax() int { return len(r.dates) - 1 }

func (r ActiveRange) Dates() dataset.DateSequence {
	out := make(dataset.DateSequence, len(r.dates))
	copy(out, r.dates)
	return out
}

// ApplySelection returns the dates of seq inside sel, or all of seq when sel
// is nil. An interval with no dates yields an empty range.
func ApplySelection(seq dataset.DateSequence, sel *Selection) ActiveRange {
	if sel == nil {
		out := make(dataset.DateSequence, len(seq))
		copy(out, seq)
		return ActiveRange{dates: out}
	}

	var out dataset.DateSequence
	for _, d := range seq {
		if sel.Contains(d) {
			out = append(out, d)
		}
	}
	return ActiveRange{dates: out}
}

// RangeFilter owns the active range. It is the only place that replaces it.
type RangeFilter struct {
	full      dataset.DateSequence
	active    ActiveRange
	selection *Selection
}

func NewRangeFilter(full dataset.DateSequence) *RangeFilter {
	return &RangeFilter{full: full, active: ApplySelection(full, nil)}
}

// Apply replaces the active range; nil clears the brush.
func (f *RangeFilter) Apply(sel *Selection) ActiveRange {
	if sel != nil {
		s := *sel
		f.selection = &s
	} else {
		f.selection = nil
	}
	f.active = ApplySelection(f.full, f.selection)
	return f.active
}

func (f *RangeFilter) Active() ActiveRange { return f.active }

// Selection returns the current brush, or nil when none is set.
func (f *RangeFilter) Selection() *Selection {
	if f.selection == nil {
		return nil
	}
	s := *f.selection
	return &s
}
