package domain

// Record is one row of the tabular dataset: the metric values of one entity
// on one date. Records are not mutated after loading.
type Record struct {
	EntityID string
	Date     CalendarDate
	Metrics  map[Metric]float64
}

// Value returns the metric value and whether the record carries it.
func (r Record) Value(m Metric) (float64, bool) {
	v, ok := r.Metrics[m]
	return v, ok
}

// Feature is a named region shape. Geometry is opaque to the core and only
// handed through to rendering collaborators.
type Feature struct {
	Label    string
	Geometry any
}
