package domain

// SeriesPoint is the sum of one metric over all entities on one date.
type SeriesPoint struct {
	Date  CalendarDate
	Value float64
}

// Series feeds the aggregate timeline chart.
type Series struct {
	Metric Metric
	Points []SeriesPoint
	YMax   float64
}

// AggregateSeries sums metric per date across the whole date sequence.
func AggregateSeries(idx *TemporalIndex, metric Metric) Series {
	s := Series{
		Metric: metric,
		Points: make([]SeriesPoint, 0, len(idx.dates)),
	}
	for _, d := range idx.dates {
		var sum float64
		idx.On(d, func(r Record) {
			if v, ok := r.Value(metric); ok {
				sum += v
			}
		})
		s.Points = append(s.Points, SeriesPoint{Date: d, Value: sum})
		if sum > s.YMax {
			s.YMax = sum
		}
	}
	return s
}
