package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/dataset/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// RecordRepository reads case records from the case_records table:
//
//	id BIGSERIAL, province TEXT, report_date DATE,
//	new_cases, new_deaths, total_cases, total_deaths NUMERIC
type RecordRepository struct {
	db       DB
	entities []string
}

var _ ports.RecordReaderPort = (*RecordRepository)(nil)

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// WithEntities restricts reads to the given provinces.
func (r *RecordRepository) WithEntities(entities ...string) *RecordRepository {
	return &RecordRepository{db: r.db, entities: entities}
}

// id order keeps insertion order, so duplicate (date, province) rows resolve
// to the last inserted one when indexed.
const selectRecordsSQL = `
SELECT
    province,
    report_date,
    new_cases,
    new_deaths,
    total_cases,
    total_deaths
FROM case_records`

func (r *RecordRepository) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	query := selectRecordsSQL
	var args []any

	if len(r.entities) > 0 {
		query += "\nWHERE province = ANY($1)"
		args = append(args, pq.Array(r.entities))
	}
	query += "\nORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var province string
		var reportDate time.Time
		var newCases, newDeaths, totalCases, totalDeaths float64

		if err := rows.Scan(&province, &reportDate, &newCases, &newDeaths, &totalCases, &totalDeaths); err != nil {
			return nil, fmt.Errorf("scan case record: %w", err)
		}

		records = append(records, domain.Record{
			EntityID: strings.TrimSpace(province),
			Date:     domain.NewCalendarDate(reportDate.UTC()),
			Metrics: map[domain.Metric]float64{
				domain.MetricNewCases:    newCases,
				domain.MetricNewDeaths:   newDeaths,
				domain.MetricTotalCases:  totalCases,
				domain.MetricTotalDeaths: totalDeaths,
			},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
