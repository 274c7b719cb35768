package prometheus

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"regional-metrics-viewer/internal/viewer/core/ports"
	"regional-metrics-viewer/internal/viewer/core/usecase"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.MetricsRecorder = (*Recorder)(nil)

func newTestRecorder(t *testing.T) (*Recorder, *prom.Registry) {
	t.Helper()
	reg := prom.NewRegistry()
	return NewRecorder(reg), reg
}

func TestRecorder_EventResults(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.EventHandled("slider_moved", nil)
	r.EventHandled("slider_moved", nil)
	r.EventHandled("slider_moved", usecase.ErrFrameOutOfRange)
	r.EventHandled("brush_changed", fmt.Errorf("%w: %w", usecase.ErrRender, errors.New("closed")))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.events.WithLabelValues("slider_moved", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.events.WithLabelValues("slider_moved", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.events.WithLabelValues("brush_changed", "render_error")))
}

func TestRecorder_FramesAndTransitions(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.FrameRendered(true)
	r.FrameRendered(true)
	r.FrameRendered(false)
	r.PlaybackTransition("playing")
	r.RenderFailed("timeline")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.frames.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.frames.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("playing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("timeline")))
}

func TestRecorder_Registered(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.ColorDomainComputed(3 * time.Millisecond)
	r.EventHandled("play_toggled", nil)

	n, err := testutil.GatherAndCount(reg, "viewer_color_domain_seconds", "viewer_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
