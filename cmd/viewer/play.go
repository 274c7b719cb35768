package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/viewer/adapters/render/terminal"
	"regional-metrics-viewer/internal/viewer/core/domain"
	"regional-metrics-viewer/internal/viewer/core/playback"
	viewerPorts "regional-metrics-viewer/internal/viewer/core/ports"
	viewerUsecase "regional-metrics-viewer/internal/viewer/core/usecase"

	"github.com/spf13/cobra"
)

const flagDateLayout = "2006-01-02"

var errHalfRange = errors.New("--from and --to must be given together")

type playOptions struct {
	metric string
	from   string
	to     string
	width  int
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	p := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in the terminal until the last date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), opts, p, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&p.metric, "metric", "", `metric to show, e.g. "New Deaths" (default from config)`)
	cmd.Flags().StringVar(&p.from, "from", "", "first date of the brushed range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.to, "to", "", "last date of the brushed range (YYYY-MM-DD)")
	cmd.Flags().IntVar(&p.width, "width", terminal.DefaultWidth, "timeline width in columns")
	return cmd
}

func (p *playOptions) selection() (*domain.Selection, error) {
	if p.from == "" && p.to == "" {
		return nil, nil
	}
	if p.from == "" || p.to == "" {
		return nil, errHalfRange
	}
	from, err := dataset.ParseCalendarDate(flagDateLayout, p.from)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := dataset.ParseCalendarDate(flagDateLayout, p.to)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	sel := domain.DateSelection(from, to)
	return &sel, nil
}

func runPlay(ctx context.Context, opts *rootOptions, p *playOptions, out, logOut io.Writer) error {
	sel, err := p.selection()
	if err != nil {
		return err
	}

	var metric dataset.Metric
	if p.metric != "" {
		if metric, err = dataset.ParseMetric(p.metric); err != nil {
			return fmt.Errorf("--metric %q: %w", p.metric, err)
		}
	}

	rt, err := bootstrap(opts, logOut)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx, rt)
	if err != nil {
		return err
	}

	renderer := terminal.New(out, terminal.WithWidth(p.width))
	sync, err := newSynchronizer(rt, ds, renderer, viewerPorts.NoopMetricsRecorder{}, viewerUsecase.Options{Metric: metric})
	if err != nil {
		return err
	}
	if err := sync.Start(ctx); err != nil {
		return err
	}
	defer sync.Close()

	if sel != nil {
		if err := sync.Dispatch(ctx, domain.BrushChanged{Selection: sel}); err != nil {
			return err
		}
	}
	if err := sync.Dispatch(ctx, domain.PlayToggled{}); err != nil {
		return err
	}

	return waitStopped(ctx, sync)
}

func waitStopped(ctx context.Context, sync *viewerUsecase.Synchronizer) error {
	ticker := time.NewTicker(playback.Interval)
	defer ticker.Stop()

	for {
		if sync.State().Playback == playback.Stopped {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
