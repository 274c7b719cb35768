package snapshot

import (
	"context"
	"sync"
	"time"

	"regional-metrics-viewer/internal/viewer/core/domain"
)

// View is the last thing every renderer target was told to draw.
// Frame is nil while the active range is empty.
type View struct {
	Frame     *domain.Frame
	Timeline  domain.Timeline
	Controls  domain.Controls
	Version   uint64
	UpdatedAt time.Time
}

// Store is a RendererPort that keeps the latest view in memory for polling
// clients.
type Store struct {
	mu   sync.RWMutex
	view View
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) RenderFrame(_ context.Context, f domain.Frame) error {
	f.Fills = append([]domain.FeatureFill(nil), f.Fills...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Frame = &f
	s.touch()
	return nil
}

func (s *Store) ClearFrame(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Frame = nil
	s.touch()
	return nil
}

func (s *Store) RenderTimeline(_ context.Context, t domain.Timeline) error {
	t.Series.Points = append(t.Series.Points[:0:0], t.Series.Points...)
	t.Annotations = append([]domain.Annotation(nil), t.Annotations...)
	if t.Selection != nil {
		sel := *t.Selection
		t.Selection = &sel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Timeline = t
	s.touch()
	return nil
}

func (s *Store) RenderControls(_ context.Context, c domain.Controls) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Controls = c
	s.touch()
	return nil
}

// Latest returns the current view. The returned value shares no memory
// with the store's later updates.
func (s *Store) Latest() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Store) touch() {
	s.view.Version++
	s.view.UpdatedAt = s.now()
}
