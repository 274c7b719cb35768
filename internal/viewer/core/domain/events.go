package domain

import (
	dataset "regional-metrics-viewer/internal/dataset/core/domain"
)

// Event is a user gesture emitted by a UI collaborator.
type Event interface {
	Kind() string
}

type MetricChanged struct {
	Metric dataset.Metric
}

// BrushChanged carries the finished brush; a nil Selection clears it.
type BrushChanged struct {
	Selection *Selection
}

type SliderMoved struct {
	Index int
}

type PlayToggled struct{}

func (MetricChanged) Kind() string { return "metric_changed" }
func (BrushChanged) Kind() string  { return "brush_changed" }
func (SliderMoved) Kind() string   { return "slider_moved" }
func (PlayToggled) Kind() string   { return "play_toggled" }
