package domain

import (
	dataset "regional-metrics-viewer/internal/dataset/core/domain"
)

const (
	LabelPlay  = "Play"
	LabelPause = "Pause"

	// NoValue is shown for a region without a record on the current date.
	NoValue = "N/A"
)

// FeatureFill is the render instruction for one region in one frame.
type FeatureFill struct {
	Label    string
	EntityID string
	HasData  bool
	Value    float64
	Color    string
	Geometry any
}

// Frame is every region's fill on one date of the active range.
type Frame struct {
	Index    int
	Date     dataset.CalendarDate
	DateText string
	Metric   dataset.Metric
	Domain   ColorDomain
	Fills    []FeatureFill

	// Animated is set while playing; renderers ease between frames then.
	Animated bool
}

// Annotation marks a notable date on the timeline.
type Annotation struct {
	Date  dataset.CalendarDate
	Label string
}

// Timeline feeds the aggregate context chart and its brush.
type Timeline struct {
	Series      dataset.Series
	Annotations []Annotation
	Selection   *Selection
}

// Controls is the state of slider, date read-out and play button.
type Controls struct {
	Metric        dataset.Metric
	Playing       bool
	PlayLabel     string
	SliderMin     int
	SliderMax     int
	SliderValue   int
	SliderEnabled bool
	DateText      string
}

// Tooltip describes one region on the current frame.
type Tooltip struct {
	Label    string
	EntityID string
	Metric   dataset.Metric
	Date     string
	HasData  bool
	Value    float64
	Display  string
}
