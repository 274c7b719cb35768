package geojson

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/dataset/core/ports"
	"regional-metrics-viewer/internal/platform/logging"

	orbjson "github.com/paulmach/orb/geojson"
)

const DefaultLabelProperty = "name"

// FeatureReader loads region shapes from a GeoJSON FeatureCollection.
// The label comes from a string property; features without one are skipped.
type FeatureReader struct {
	open     func() (io.ReadCloser, error)
	labelKey string
	logger   *slog.Logger
}

var _ ports.FeatureReaderPort = (*FeatureReader)(nil)

func NewFeatureReader(path, labelKey string, logger *slog.Logger) *FeatureReader {
	return newFeatureReader(func() (io.ReadCloser, error) { return os.Open(path) }, labelKey, logger)
}

func NewFeatureReaderFrom(r io.Reader, labelKey string, logger *slog.Logger) *FeatureReader {
	return newFeatureReader(func() (io.ReadCloser, error) { return io.NopCloser(r), nil }, labelKey, logger)
}

func newFeatureReader(open func() (io.ReadCloser, error), labelKey string, logger *slog.Logger) *FeatureReader {
	if labelKey == "" {
		labelKey = DefaultLabelProperty
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &FeatureReader{open: open, labelKey: labelKey, logger: logger}
}

func (r *FeatureReader) ReadFeatures(ctx context.Context) ([]domain.Feature, error) {
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fc, err := orbjson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	features := make([]domain.Feature, 0, len(fc.Features))
	for i, feat := range fc.Features {
		label := strings.TrimSpace(feat.Properties.MustString(r.labelKey, ""))
		if label == "" {
			r.logger.Warn("feature without label skipped", "index", i, "property", r.labelKey)
			continue
		}
		features = append(features, domain.Feature{
			Label:    label,
			Geometry: feat.Geometry,
		})
	}

	return features, nil
}
