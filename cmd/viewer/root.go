package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"regional-metrics-viewer/internal/config"
	"regional-metrics-viewer/internal/dataset/adapters/csvfile"
	"regional-metrics-viewer/internal/dataset/adapters/geojson"
	datasetRepoPg "regional-metrics-viewer/internal/dataset/adapters/postgres"
	"regional-metrics-viewer/internal/dataset/core/ports"
	datasetUsecase "regional-metrics-viewer/internal/dataset/core/usecase"
	"regional-metrics-viewer/internal/platform/logging"
	"regional-metrics-viewer/internal/viewer/core/playback"
	viewerPorts "regional-metrics-viewer/internal/viewer/core/ports"
	viewerUsecase "regional-metrics-viewer/internal/viewer/core/usecase"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "viewer",
		Short:        "Animated choropleth of regional time-series metrics",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "viewer.yaml",
		"path to the YAML config file; a missing file means defaults")

	cmd.AddCommand(newServeCmd(opts), newPlayCmd(opts))
	return cmd
}

// runtime is what every command needs before it can build a view.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	session string
}

func bootstrap(opts *rootOptions, logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Logging()
	logCfg.Writer = logOut
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	session := uuid.NewString()
	return &runtime{
		cfg:     cfg,
		logger:  logger.With("session_id", session),
		session: session,
	}, nil
}

// loadDataset reads records and geometry once. A Postgres connection is only
// held for the duration of the load.
func loadDataset(ctx context.Context, rt *runtime) (*datasetUsecase.Dataset, error) {
	src := rt.cfg.Source

	var records ports.RecordReaderPort
	switch src.Kind {
	case config.SourcePostgres:
		db, err := openPostgres(ctx, src.PostgresDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		records = newRecordRepository(datasetRepoPg.NewSQLDB(db, src.QueryTimeout), src)
	default:
		records = csvfile.NewRecordReader(src.CSVPath, src.DateLayout)
	}
	features := geojson.NewFeatureReader(src.GeoJSONPath, src.LabelProperty, rt.logger)

	uc := datasetUsecase.NewLoadDatasetUseCase(records, features, rt.cfg.AliasTable(), rt.logger)
	return uc.Execute(ctx)
}

func newRecordRepository(db datasetRepoPg.DB, src config.SourceConfig) *datasetRepoPg.RecordRepository {
	repo := datasetRepoPg.NewRecordRepository(db)
	if len(src.Entities) > 0 {
		repo = repo.WithEntities(src.Entities...)
	}
	return repo
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func newSynchronizer(
	rt *runtime,
	ds *datasetUsecase.Dataset,
	renderer viewerPorts.RendererPort,
	recorder viewerPorts.MetricsRecorder,
	opts viewerUsecase.Options,
) (*viewerUsecase.Synchronizer, error) {
	annotations, err := rt.cfg.AnnotationList()
	if err != nil {
		return nil, err
	}
	if opts.Metric == "" {
		opts.Metric = rt.cfg.Metric()
	}
	opts.Annotations = annotations
	opts.Clock = playback.RealClock{}
	opts.Recorder = recorder
	opts.Logger = rt.logger

	return viewerUsecase.NewSynchronizer(ds.Index, ds.Features, ds.Aliases, renderer, opts)
}
