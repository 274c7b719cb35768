package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	viewerHttp "regional-metrics-viewer/internal/viewer/adapters/http/fiber"
	viewerProm "regional-metrics-viewer/internal/viewer/adapters/prometheus"
	"regional-metrics-viewer/internal/viewer/adapters/render/snapshot"
	viewerUsecase "regional-metrics-viewer/internal/viewer/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "regional-metrics-viewer/docs"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept UI events over HTTP and serve the latest view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	rt, err := bootstrap(opts, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx, rt)
	if err != nil {
		return err
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := viewerProm.NewRecorder(reg)

	// View state
	store := snapshot.NewStore()
	sync, err := newSynchronizer(rt, ds, store, recorder, viewerUsecase.Options{})
	if err != nil {
		return err
	}
	if err := sync.Start(ctx); err != nil {
		return err
	}
	defer sync.Close()

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(viewerHttp.Session(rt.session))

	// event endpoints
	h := viewerHttp.NewViewHandler(sync, store)
	app.Post("/events/metric", h.ChangeMetric)
	app.Post("/events/brush", h.ChangeBrush)
	app.Post("/events/slider", h.MoveSlider)
	app.Post("/events/play", h.TogglePlay)

	// read-out endpoints
	app.Get("/view", h.GetView)
	app.Get("/regions/:label", h.GetRegion)

	app.Get("/internal/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(rt.cfg.ListenAddr)
	}()

	rt.logger.Info("server started", "addr", rt.cfg.ListenAddr)

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber stopped: %w", err)
	case <-ctx.Done():
	}

	rt.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		rt.logger.Error("fiber shutdown error", "error", err)
	}

	rt.logger.Info("server exiting")
	return nil
}
