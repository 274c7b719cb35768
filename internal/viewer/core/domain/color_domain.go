package domain

import (
	dataset "regional-metrics-viewer/internal/dataset/core/domain"
)

// ColorDomain is the numeric interval mapped onto the colour ramp.
// Min is always 0 and Max is at least 1.
type ColorDomain struct {
	Min float64
	Max float64
}

// ComputeDomain scans every record of every date in rng for metric.
func ComputeDomain(idx *dataset.TemporalIndex, rng ActiveRange, metric dataset.Metric) ColorDomain {
	var peak float64
	for _, d := range rng.dates {
		idx.On(d, func(r dataset.Record) {
			if v, ok := r.Value(metric); ok && v > peak {
				peak = v
			}
		})
	}
	if peak < 1 {
		peak = 1
	}
	return ColorDomain{Min: 0, Max: peak}
}

// Normalize maps v into [0,1], clamping values outside the domain.
func (c ColorDomain) Normalize(v float64) float64 {
	span := c.Max - c.Min
	if span <= 0 {
		return 0
	}
	t := (v - c.Min) / span
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
