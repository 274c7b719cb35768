package snapshot

import (
	"context"
	"testing"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/viewer/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_KeepsLatestView(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2021, time.July, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	assert.Nil(t, s.Latest().Frame)
	assert.Zero(t, s.Latest().Version)

	fills := []domain.FeatureFill{{Label: "Aceh", Color: "#fff5f0", HasData: true, Value: 3}}
	require.NoError(t, s.RenderFrame(ctx, domain.Frame{Index: 2, DateText: "Jul 03, 2021", Fills: fills}))
	require.NoError(t, s.RenderControls(ctx, domain.Controls{PlayLabel: domain.LabelPause, SliderMax: 4}))

	v := s.Latest()
	require.NotNil(t, v.Frame)
	assert.Equal(t, 2, v.Frame.Index)
	assert.Equal(t, domain.LabelPause, v.Controls.PlayLabel)
	assert.Equal(t, uint64(2), v.Version)
	assert.Equal(t, fixed, v.UpdatedAt)

	fills[0].Color = "#000000"
	assert.Equal(t, "#fff5f0", s.Latest().Frame.Fills[0].Color, "store copies fills")
}

func TestStore_ClearFrame(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.RenderFrame(ctx, domain.Frame{Index: 1}))
	require.NoError(t, s.ClearFrame(ctx))

	assert.Nil(t, s.Latest().Frame)
	assert.Equal(t, uint64(2), s.Latest().Version)
}

func TestStore_TimelineIsCopied(t *testing.T) {
	s := NewStore()
	d := dataset.Date(2021, time.July, 1)
	sel := domain.DateSelection(d, d)
	points := []dataset.SeriesPoint{{Date: d, Value: 10}}

	require.NoError(t, s.RenderTimeline(context.Background(), domain.Timeline{
		Series:    dataset.Series{Metric: dataset.MetricNewCases, Points: points, YMax: 10},
		Selection: &sel,
	}))

	points[0].Value = 99
	sel.From = time.Time{}

	tl := s.Latest().Timeline
	assert.Equal(t, 10.0, tl.Series.Points[0].Value)
	require.NotNil(t, tl.Selection)
	assert.Equal(t, d.Time(), tl.Selection.From)
}
