package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/dataset/core/ports"
)

const (
	DefaultDateLayout = "01/02/2006"

	columnDate   = "Date"
	columnEntity = "Province"
)

var ErrMissingColumn = errors.New("missing required column")

// RecordReader parses the per-province case table. The header row decides
// column positions; columns that are not metrics are ignored.
type RecordReader struct {
	open   func() (io.ReadCloser, error)
	layout string
}

var _ ports.RecordReaderPort = (*RecordReader)(nil)

func NewRecordReader(path, dateLayout string) *RecordReader {
	return &RecordReader{
		open:   func() (io.ReadCloser, error) { return os.Open(path) },
		layout: layoutOrDefault(dateLayout),
	}
}

// NewRecordReaderFrom reads from an already opened stream.
func NewRecordReaderFrom(r io.Reader, dateLayout string) *RecordReader {
	return &RecordReader{
		open:   func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		layout: layoutOrDefault(dateLayout),
	}
}

func layoutOrDefault(layout string) string {
	if layout == "" {
		return DefaultDateLayout
	}
	return layout
}

func (r *RecordReader) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	dateCol, ok := cols[columnDate]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnDate)
	}
	entityCol, ok := cols[columnEntity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnEntity)
	}
	metricCols := make(map[domain.Metric]int)
	for _, m := range domain.Metrics() {
		if i, ok := cols[string(m)]; ok {
			metricCols[m] = i
		}
	}

	var records []domain.Record
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := domain.ParseCalendarDate(r.layout, strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		metrics := make(map[domain.Metric]float64, len(metricCols))
		for m, i := range metricCols {
			v, err := parseNumber(row[i])
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, m, err)
			}
			metrics[m] = v
		}

		records = append(records, domain.Record{
			EntityID: strings.TrimSpace(row[entityCol]),
			Date:     date,
			Metrics:  metrics,
		})
	}

	return records, nil
}

// parseNumber treats an empty cell as zero.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
