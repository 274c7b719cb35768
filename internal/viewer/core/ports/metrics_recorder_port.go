package ports

import "time"

// MetricsRecorder receives operational counters from the synchronizer.
type MetricsRecorder interface {
	EventHandled(kind string, err error)
	FrameRendered(animated bool)
	RenderFailed(target string)
	PlaybackTransition(state string)
	ColorDomainComputed(d time.Duration)
}

type NoopMetricsRecorder struct{}

func (NoopMetricsRecorder) EventHandled(string, error)        {}
func (NoopMetricsRecorder) FrameRendered(bool)                {}
func (NoopMetricsRecorder) RenderFailed(string)               {}
func (NoopMetricsRecorder) PlaybackTransition(string)         {}
func (NoopMetricsRecorder) ColorDomainComputed(time.Duration) {}
