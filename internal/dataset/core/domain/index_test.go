package domain_test

import (
	"testing"
	"time"

	"regional-metrics-viewer/internal/dataset/core/domain"
)

func rec(entity string, d domain.CalendarDate, newCases float64) domain.Record {
	return domain.Record{
		EntityID: entity,
		Date:     d,
		Metrics:  map[domain.Metric]float64{domain.MetricNewCases: newCases},
	}
}

func TestBuildIndex_EveryRecordReachable(t *testing.T) {
	d1 := domain.Date(2021, time.March, 1)
	d2 := domain.Date(2021, time.March, 2)
	d3 := domain.Date(2021, time.March, 3)

	records := []domain.Record{
		rec("Aceh", d3, 3),
		rec("Bali", d1, 10),
		rec("Aceh", d1, 1),
		rec("Bali", d2, 20),
	}

	idx := domain.BuildIndex(records)

	for _, r := range records {
		got, ok := idx.Lookup(r.Date, r.EntityID)
		if !ok {
			t.Fatalf("record %s@%s not reachable", r.EntityID, r.Date)
		}
		if got.Metrics[domain.MetricNewCases] != r.Metrics[domain.MetricNewCases] {
			t.Fatalf("unexpected record for %s@%s: %+v", r.EntityID, r.Date, got)
		}
	}

	if idx.Size() != len(records) {
		t.Fatalf("expected size %d, got %d", len(records), idx.Size())
	}
	if idx.Entities() != 2 {
		t.Fatalf("expected 2 entities, got %d", idx.Entities())
	}
}

func TestBuildIndex_DatesSortedAndDeduplicated(t *testing.T) {
	d1 := domain.Date(2020, time.December, 31)
	d2 := domain.Date(2021, time.January, 1)
	d3 := domain.Date(2021, time.January, 2)

	idx := domain.BuildIndex([]domain.Record{
		rec("A", d3, 1), rec("B", d1, 1), rec("C", d2, 1), rec("D", d1, 1),
	})

	dates := idx.Dates()
	want := domain.DateSequence{d1, d2, d3}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates[%d]: expected %v, got %v", i, want[i], dates[i])
		}
	}

	first, _ := dates.First()
	last, _ := dates.Last()
	if first != d1 || last != d3 {
		t.Fatalf("unexpected bounds %v..%v", first, last)
	}
}

func TestBuildIndex_LastWriteWins(t *testing.T) {
	d := domain.Date(2021, time.May, 5)

	idx := domain.BuildIndex([]domain.Record{
		rec("Aceh", d, 1),
		rec("Aceh", d, 2),
	})

	got, ok := idx.Lookup(d, "Aceh")
	if !ok {
		t.Fatalf("expected record")
	}
	if got.Metrics[domain.MetricNewCases] != 2 {
		t.Fatalf("expected later record to win, got %v", got.Metrics[domain.MetricNewCases])
	}
	if idx.Overwritten() != 1 {
		t.Fatalf("expected 1 overwritten record, got %d", idx.Overwritten())
	}
}

func TestBuildIndex_DatesIsCopy(t *testing.T) {
	d := domain.Date(2021, time.May, 5)
	idx := domain.BuildIndex([]domain.Record{rec("Aceh", d, 1)})

	dates := idx.Dates()
	dates[0] = domain.Date(1999, time.January, 1)

	if first, _ := idx.Dates().First(); first != d {
		t.Fatalf("index dates mutated through copy: %v", first)
	}
}

func TestBuildIndex_Empty(t *testing.T) {
	idx := domain.BuildIndex(nil)
	if idx.Dates().Len() != 0 {
		t.Fatalf("expected no dates")
	}
	if _, ok := idx.Lookup(domain.Date(2021, time.May, 5), "Aceh"); ok {
		t.Fatalf("expected miss on empty index")
	}
	if _, ok := idx.Dates().First(); ok {
		t.Fatalf("expected no first date")
	}
}

func TestAggregateSeries_SumsPerDate(t *testing.T) {
	d1 := domain.Date(2021, time.March, 1)
	d2 := domain.Date(2021, time.March, 2)

	idx := domain.BuildIndex([]domain.Record{
		rec("Aceh", d1, 4), rec("Bali", d1, 6),
		rec("Aceh", d2, 0), rec("Bali", d2, 0),
	})

	s := domain.AggregateSeries(idx, domain.MetricNewCases)
	if len(s.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(s.Points))
	}
	if s.Points[0].Date != d1 || s.Points[0].Value != 10 {
		t.Fatalf("unexpected first point: %+v", s.Points[0])
	}
	if s.Points[1].Value != 0 {
		t.Fatalf("unexpected second point: %+v", s.Points[1])
	}
	if s.YMax != 10 {
		t.Fatalf("expected YMax=10, got %v", s.YMax)
	}

	deaths := domain.AggregateSeries(idx, domain.MetricNewDeaths)
	if deaths.YMax != 0 || deaths.Metric != domain.MetricNewDeaths {
		t.Fatalf("unexpected deaths series: %+v", deaths)
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range domain.Metrics() {
		got, err := domain.ParseMetric(string(m))
		if err != nil || got != m {
			t.Fatalf("ParseMetric(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := domain.ParseMetric("Recovered"); err != domain.ErrUnknownMetric {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}
