package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/platform/logging"
	"regional-metrics-viewer/internal/viewer/core/domain"
	"regional-metrics-viewer/internal/viewer/core/playback"
	"regional-metrics-viewer/internal/viewer/core/ports"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrUnknownMetric   = dataset.ErrUnknownMetric
	ErrFrameOutOfRange = playback.ErrFrameOutOfRange
	ErrUnknownEvent    = errors.New("unknown event")
	ErrNotStarted      = errors.New("synchronizer not started")
	ErrRender          = errors.New("render failed")
	ErrEmptyIndex      = errors.New("temporal index is empty")
)

type Options struct {
	Metric      dataset.Metric
	Annotations []domain.Annotation
	Clock       playback.Clock
	Ramp        *domain.ColorRamp
	Recorder    ports.MetricsRecorder
	Logger      *slog.Logger
}

// ViewState is a read-only copy of the synchronizer's state.
type ViewState struct {
	Metric    dataset.Metric
	Domain    domain.ColorDomain
	Range     domain.ActiveRange
	Selection *domain.Selection
	Playback  playback.State
	Frame     int
}

// Synchronizer owns all mutable view state and is the single entry point for
// UI events. Each event is handled to completion under one lock, including
// the renders it causes, so collaborators never observe a half-applied
// change. Playback ticks go through the same lock.
type Synchronizer struct {
	mu sync.Mutex

	index       *dataset.TemporalIndex
	features    []dataset.Feature
	aliases     dataset.AliasTable
	annotations []domain.Annotation

	ranges    *domain.RangeFilter
	metric    dataset.Metric
	colors    domain.ColorDomain
	series    dataset.Series
	scheduler *playback.Scheduler

	renderer ports.RendererPort
	ramp     domain.ColorRamp
	recorder ports.MetricsRecorder
	logger   *slog.Logger
	printer  *message.Printer

	// baseCtx is used for renders that no caller asked for: playback ticks
	// and the state changes they cause.
	baseCtx context.Context
	started bool

	// Set for the duration of Dispatch. Listener renders run under the
	// caller's ctx and their failures are returned by Dispatch.
	dispatchCtx  context.Context
	listenerErrs []error
}

func NewSynchronizer(
	index *dataset.TemporalIndex,
	features []dataset.Feature,
	aliases dataset.AliasTable,
	renderer ports.RendererPort,
	opts Options,
) (*Synchronizer, error) {
	if index == nil || index.Dates().Len() == 0 {
		return nil, ErrEmptyIndex
	}

	metric := opts.Metric
	if metric == "" {
		metric = dataset.MetricNewCases
	}
	if !metric.Valid() {
		return nil, ErrUnknownMetric
	}

	s := &Synchronizer{
		index:       index,
		features:    features,
		aliases:     aliases,
		annotations: append([]domain.Annotation(nil), opts.Annotations...),
		ranges:      domain.NewRangeFilter(index.Dates()),
		metric:      metric,
		renderer:    renderer,
		recorder:    opts.Recorder,
		logger:      opts.Logger,
		printer:     message.NewPrinter(language.English),
		baseCtx:     context.Background(),
	}
	if opts.Ramp != nil {
		s.ramp = *opts.Ramp
	} else {
		s.ramp = domain.RedsRamp()
	}
	if s.recorder == nil {
		s.recorder = ports.NoopMetricsRecorder{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	s.scheduler = playback.NewScheduler(opts.Clock, schedulerEvents{s: s}, s.serialized)

	return s, nil
}

func (s *Synchronizer) serialized(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Start computes the initial view over the full date sequence and renders it.
// ctx also serves the renders triggered later by playback ticks.
func (s *Synchronizer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseCtx = ctx
	s.series = dataset.AggregateSeries(s.index, s.metric)
	s.recomputeDomain()
	s.scheduler.Reset(s.ranges.Active().Len(), false)
	s.started = true

	s.logger.Info("view started",
		"metric", s.metric,
		"dates", s.ranges.Active().Len(),
		"color_max", s.colors.Max,
	)

	return s.renderErr(
		s.renderTimeline(ctx),
		s.renderCurrentFrame(ctx, false),
		s.renderControls(ctx),
	)
}

// Close stops playback without notifying renderers.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler.Suspend()
}

// Dispatch applies one UI event.
func (s *Synchronizer) Dispatch(ctx context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	s.dispatchCtx = ctx
	defer func() {
		s.dispatchCtx = nil
		s.listenerErrs = nil
	}()

	var err error
	switch e := ev.(type) {
	case domain.MetricChanged:
		err = s.changeMetric(ctx, e.Metric)
	case domain.BrushChanged:
		err = s.changeBrush(ctx, e.Selection)
	case domain.SliderMoved:
		err = s.moveSlider(ctx, e.Index)
	case domain.PlayToggled:
		s.scheduler.Toggle()
	default:
		err = ErrUnknownEvent
	}
	if lerr := errors.Join(s.listenerErrs...); lerr != nil {
		if err == nil {
			err = s.renderErr(lerr)
		} else {
			err = errors.Join(err, s.renderErr(lerr))
		}
	}

	kind := "unknown"
	if ev != nil {
		kind = ev.Kind()
	}
	s.recorder.EventHandled(kind, err)
	s.logger.Debug("event handled",
		"event", kind,
		"frame", s.scheduler.Frame(),
		"playback", s.scheduler.State().String(),
		"error", err,
	)

	return err
}

// metric -> aggregate series -> colour domain -> current frame
func (s *Synchronizer) changeMetric(ctx context.Context, m dataset.Metric) error {
	if !m.Valid() {
		return ErrUnknownMetric
	}
	s.metric = m
	s.series = dataset.AggregateSeries(s.index, m)
	timelineErr := s.renderTimeline(ctx)

	s.recomputeDomain()

	return s.renderErr(
		timelineErr,
		s.renderCurrentFrame(ctx, s.scheduler.State() == playback.Playing),
		s.renderControls(ctx),
	)
}

// stop timer -> active range -> colour domain -> frame 0 (-> resume)
func (s *Synchronizer) changeBrush(ctx context.Context, sel *domain.Selection) error {
	wasPlaying := s.scheduler.Suspend()

	active := s.ranges.Apply(sel)
	s.recomputeDomain()
	s.scheduler.Reset(active.Len(), wasPlaying)

	s.logger.Info("active range replaced",
		"dates", active.Len(),
		"cleared", sel == nil,
		"color_max", s.colors.Max,
		"playing", s.scheduler.State() == playback.Playing,
	)

	return s.renderErr(
		s.renderTimeline(ctx),
		s.renderCurrentFrame(ctx, false),
		s.renderControls(ctx),
	)
}

func (s *Synchronizer) moveSlider(ctx context.Context, i int) error {
	if s.ranges.Active().Empty() {
		return nil
	}
	if err := s.scheduler.Seek(i); err != nil {
		return err
	}
	return s.renderErr(
		s.renderCurrentFrame(ctx, false),
		s.renderControls(ctx),
	)
}

func (s *Synchronizer) recomputeDomain() {
	start := time.Now()
	s.colors = domain.ComputeDomain(s.index, s.ranges.Active(), s.metric)
	s.recorder.ColorDomainComputed(time.Since(start))
}

// Inspect describes one region on the frame currently displayed.
func (s *Synchronizer) Inspect(label string) domain.Tooltip {
	s.mu.Lock()
	defer s.mu.Unlock()

	tip := domain.Tooltip{
		Label:    label,
		EntityID: s.aliases.Resolve(label),
		Metric:   s.metric,
		Display:  domain.NoValue,
	}

	date, ok := s.ranges.Active().At(s.scheduler.Frame())
	if !ok {
		return tip
	}
	tip.Date = date.Display()

	rec, ok := s.index.Lookup(date, tip.EntityID)
	if !ok {
		return tip
	}
	if v, ok := rec.Value(s.metric); ok {
		tip.HasData = true
		tip.Value = v
		tip.Display = s.printer.Sprintf("%.0f", v)
	}
	return tip
}

func (s *Synchronizer) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ViewState{
		Metric:    s.metric,
		Domain:    s.colors,
		Range:     s.ranges.Active(),
		Selection: s.ranges.Selection(),
		Playback:  s.scheduler.State(),
		Frame:     s.scheduler.Frame(),
	}
}

// Scale returns the pixel scale of a timeline of the given width.
func (s *Synchronizer) Scale(width float64) domain.TimeScale {
	return domain.NewTimeScale(s.index.Dates(), width)
}

// ---- rendering, always called with mu held ----

func (s *Synchronizer) buildFrame(date dataset.CalendarDate, animated bool) domain.Frame {
	f := domain.Frame{
		Index:    s.scheduler.Frame(),
		Date:     date,
		DateText: date.Display(),
		Metric:   s.metric,
		Domain:   s.colors,
		Fills:    make([]domain.FeatureFill, 0, len(s.features)),
		Animated: animated,
	}

	for _, feat := range s.features {
		fill := domain.FeatureFill{
			Label:    feat.Label,
			EntityID: s.aliases.Resolve(feat.Label),
			Color:    domain.NoDataColor,
			Geometry: feat.Geometry,
		}
		if rec, ok := s.index.Lookup(date, fill.EntityID); ok {
			if v, ok := rec.Value(s.metric); ok {
				fill.HasData = true
				fill.Value = v
				fill.Color = s.ramp.Color(v, s.colors)
			}
		}
		f.Fills = append(f.Fills, fill)
	}

	return f
}

func (s *Synchronizer) renderCurrentFrame(ctx context.Context, animated bool) error {
	date, ok := s.ranges.Active().At(s.scheduler.Frame())
	if !ok {
		if err := s.renderer.ClearFrame(ctx); err != nil {
			s.recorder.RenderFailed("frame")
			return err
		}
		return nil
	}

	if err := s.renderer.RenderFrame(ctx, s.buildFrame(date, animated)); err != nil {
		s.recorder.RenderFailed("frame")
		return err
	}
	s.recorder.FrameRendered(animated)
	return nil
}

func (s *Synchronizer) renderTimeline(ctx context.Context) error {
	t := domain.Timeline{
		Series:      s.series,
		Annotations: append([]domain.Annotation(nil), s.annotations...),
		Selection:   s.ranges.Selection(),
	}
	if err := s.renderer.RenderTimeline(ctx, t); err != nil {
		s.recorder.RenderFailed("timeline")
		return err
	}
	return nil
}

func (s *Synchronizer) controls() domain.Controls {
	active := s.ranges.Active()
	c := domain.Controls{
		Metric:        s.metric,
		Playing:       s.scheduler.State() == playback.Playing,
		PlayLabel:     domain.LabelPlay,
		SliderMin:     0,
		SliderMax:     active.SliderMax(),
		SliderEnabled: !active.Empty(),
	}
	if c.Playing {
		c.PlayLabel = domain.LabelPause
	}
	if date, ok := active.At(s.scheduler.Frame()); ok {
		c.SliderValue = s.scheduler.Frame()
		c.DateText = date.Display()
	}
	return c
}

func (s *Synchronizer) renderControls(ctx context.Context) error {
	if err := s.renderer.RenderControls(ctx, s.controls()); err != nil {
		s.recorder.RenderFailed("controls")
		return err
	}
	return nil
}

func (s *Synchronizer) renderErr(errs ...error) error {
	if err := errors.Join(errs...); err != nil {
		s.logger.Error("render failed", "error", err)
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// schedulerEvents keeps the listener methods off the Synchronizer's public API;
// the scheduler only calls them with mu held.
type schedulerEvents struct {
	s *Synchronizer
}

func (e schedulerEvents) ctx() context.Context {
	if e.s.dispatchCtx != nil {
		return e.s.dispatchCtx
	}
	return e.s.baseCtx
}

func (e schedulerEvents) report(errs ...error) {
	s := e.s
	if s.dispatchCtx != nil {
		s.listenerErrs = append(s.listenerErrs, errs...)
		return
	}
	_ = s.renderErr(errs...)
}

func (e schedulerEvents) FrameChanged(int) {
	s, ctx := e.s, e.ctx()
	e.report(
		s.renderCurrentFrame(ctx, true),
		s.renderControls(ctx),
	)
}

func (e schedulerEvents) StateChanged(state playback.State) {
	s := e.s
	s.recorder.PlaybackTransition(state.String())
	s.logger.Info("playback "+state.String(), "frame", s.scheduler.Frame())
	e.report(s.renderControls(e.ctx()))
}
