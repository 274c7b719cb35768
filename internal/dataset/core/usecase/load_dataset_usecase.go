package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/dataset/core/ports"
	"regional-metrics-viewer/internal/platform/logging"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyDataset = errors.New("dataset has no records")
	ErrNoFeatures   = errors.New("geometry collection has no features")
)

// Dataset is everything the view layer needs, built once at start-up.
type Dataset struct {
	Index    *domain.TemporalIndex
	Features []domain.Feature
	Aliases  domain.AliasTable

	// Unmatched lists feature labels whose resolved entity id never appears
	// in the records. They always render as "no data".
	Unmatched []string
}

type LoadDatasetUseCase struct {
	records  ports.RecordReaderPort
	features ports.FeatureReaderPort
	aliases  domain.AliasTable
	logger   *slog.Logger
}

func NewLoadDatasetUseCase(
	records ports.RecordReaderPort,
	features ports.FeatureReaderPort,
	aliases domain.AliasTable,
	logger *slog.Logger,
) *LoadDatasetUseCase {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LoadDatasetUseCase{
		records:  records,
		features: features,
		aliases:  aliases,
		logger:   logger,
	}
}

// Execute loads both sources concurrently. Any loader failure aborts the
// whole load; there is no partial dataset.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*Dataset, error) {
	var (
		records  []domain.Record
		features []domain.Feature
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.records.ReadRecords(gctx)
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		features, err = uc.features.ReadFeatures(gctx)
		if err != nil {
			return fmt.Errorf("load features: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	idx := domain.BuildIndex(records)
	if idx.Overwritten() > 0 {
		uc.logger.Warn("duplicate (date, entity) records, later rows kept",
			"overwritten", idx.Overwritten())
	}

	ds := &Dataset{
		Index:     idx,
		Features:  features,
		Aliases:   uc.aliases,
		Unmatched: unmatchedLabels(records, features, uc.aliases),
	}

	dates := idx.Dates()
	first, _ := dates.First()
	last, _ := dates.Last()
	uc.logger.Info("dataset loaded",
		"records", len(records),
		"dates", dates.Len(),
		"first_date", first.String(),
		"last_date", last.String(),
		"entities", idx.Entities(),
		"features", len(features),
		"unmatched_features", len(ds.Unmatched),
	)
	if len(ds.Unmatched) > 0 {
		uc.logger.Warn("features without matching entity", "labels", ds.Unmatched)
	}

	return ds, nil
}

func unmatchedLabels(records []domain.Record, features []domain.Feature, aliases domain.AliasTable) []string {
	known := make(map[string]struct{}, len(records))
	for _, r := range records {
		known[r.EntityID] = struct{}{}
	}

	var out []string
	for _, f := range features {
		if _, ok := known[aliases.Resolve(f.Label)]; !ok {
			out = append(out, f.Label)
		}
	}
	sort.Strings(out)
	return out
}
