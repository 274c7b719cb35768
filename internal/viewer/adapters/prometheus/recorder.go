package prometheus

import (
	"errors"
	"strconv"
	"time"

	"regional-metrics-viewer/internal/viewer/core/usecase"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "viewer"

// Recorder implements ports.MetricsRecorder on client_golang collectors.
type Recorder struct {
	events      *prom.CounterVec
	frames      *prom.CounterVec
	failures    *prom.CounterVec
	transitions *prom.CounterVec
	domainTime  prom.Histogram
}

// NewRecorder registers the viewer collectors on reg.
func NewRecorder(reg prom.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		events: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "UI events handled, by event kind and result",
		}, []string{"event", "result"}),
		frames: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Frames handed to renderers",
		}, []string{"animated"}),
		failures: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_failures_total",
			Help:      "Renderer calls that returned an error, by target",
		}, []string{"target"}),
		transitions: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "playback_transitions_total",
			Help:      "Playback state changes, by new state",
		}, []string{"state"}),
		domainTime: f.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "color_domain_seconds",
			Help:      "Time spent scanning the active range for the colour domain",
			Buckets:   prom.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

func (r *Recorder) EventHandled(kind string, err error) {
	r.events.WithLabelValues(kind, result(err)).Inc()
}

func (r *Recorder) FrameRendered(animated bool) {
	r.frames.WithLabelValues(strconv.FormatBool(animated)).Inc()
}

func (r *Recorder) RenderFailed(target string) {
	r.failures.WithLabelValues(target).Inc()
}

func (r *Recorder) PlaybackTransition(state string) {
	r.transitions.WithLabelValues(state).Inc()
}

func (r *Recorder) ColorDomainComputed(d time.Duration) {
	r.domainTime.Observe(d.Seconds())
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, usecase.ErrRender):
		return "render_error"
	default:
		return "rejected"
	}
}
