package domain

import "errors"

var ErrUnknownMetric = errors.New("unknown metric")

// Metric names one of the numeric columns of the tabular dataset.
type Metric string

const (
	MetricNewCases    Metric = "New Cases"
	MetricNewDeaths   Metric = "New Deaths"
	MetricTotalCases  Metric = "Total Cases"
	MetricTotalDeaths Metric = "Total Deaths"
)

var allMetrics = []Metric{
	MetricNewCases,
	MetricNewDeaths,
	MetricTotalCases,
	MetricTotalDeaths,
}

// Metrics returns the enumerated metric set in display order.
func Metrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics)
	return out
}

func (m Metric) Valid() bool {
	for _, known := range allMetrics {
		if m == known {
			return true
		}
	}
	return false
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.Valid() {
		return "", ErrUnknownMetric
	}
	return m, nil
}
