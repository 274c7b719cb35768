package ports

import (
	"context"

	"regional-metrics-viewer/internal/dataset/core/domain"
)

// RecordReaderPort yields typed records. Parsing of the raw source format
// (dates, numeric coercion) is the adapter's job.
type RecordReaderPort interface {
	ReadRecords(ctx context.Context) ([]domain.Record, error)
}

type FeatureReaderPort interface {
	ReadFeatures(ctx context.Context) ([]domain.Feature, error)
}
