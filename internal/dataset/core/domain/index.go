package domain

import "sort"

// DateSequence is the ascending, de-duplicated list of dates in a dataset.
type DateSequence []CalendarDate

func (s DateSequence) Len() int { return len(s) }

func (s DateSequence) First() (CalendarDate, bool) {
	if len(s) == 0 {
		return CalendarDate{}, false
	}
	return s[0], true
}

func (s DateSequence) Last() (CalendarDate, bool) {
	if len(s) == 0 {
		return CalendarDate{}, false
	}
	return s[len(s)-1], true
}

// TemporalIndex groups records by date, then by entity identifier.
// It is built once and only read afterwards.
type TemporalIndex struct {
	byDate      map[CalendarDate]map[string]Record
	dates       DateSequence
	entities    int
	overwritten int
}

// BuildIndex groups records by (date, entity). When two records share a key
// the later one in input order wins; the number of replaced records is
// reported by Overwritten.
func BuildIndex(records []Record) *TemporalIndex {
	idx := &TemporalIndex{byDate: make(map[CalendarDate]map[string]Record)}
	entities := make(map[string]struct{})

	for _, r := range records {
		bucket, ok := idx.byDate[r.Date]
		if !ok {
			bucket = make(map[string]Record)
			idx.byDate[r.Date] = bucket
			idx.dates = append(idx.dates, r.Date)
		}
		if _, dup := bucket[r.EntityID]; dup {
			idx.overwritten++
		}
		bucket[r.EntityID] = r
		entities[r.EntityID] = struct{}{}
	}

	sort.Slice(idx.dates, func(i, j int) bool {
		return idx.dates[i].Before(idx.dates[j])
	})
	idx.entities = len(entities)

	return idx
}

// Dates returns a copy of the full date sequence.
func (idx *TemporalIndex) Dates() DateSequence {
	out := make(DateSequence, len(idx.dates))
	copy(out, idx.dates)
	return out
}

func (idx *TemporalIndex) Lookup(date CalendarDate, entityID string) (Record, bool) {
	bucket, ok := idx.byDate[date]
	if !ok {
		return Record{}, false
	}
	r, ok := bucket[entityID]
	return r, ok
}

// On calls fn for every record observed on date. Iteration order is unspecified.
func (idx *TemporalIndex) On(date CalendarDate, fn func(Record)) {
	for _, r := range idx.byDate[date] {
		fn(r)
	}
}

func (idx *TemporalIndex) Entities() int    { return idx.entities }
func (idx *TemporalIndex) Overwritten() int { return idx.overwritten }

func (idx *TemporalIndex) Size() int {
	n := 0
	for _, bucket := range idx.byDate {
		n += len(bucket)
	}
	return n
}
