package domain_test

import (
	"testing"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/viewer/core/domain"
)

func days(n int) dataset.DateSequence {
	start := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	seq := make(dataset.DateSequence, n)
	for i := range seq {
		seq[i] = dataset.NewCalendarDate(start.AddDate(0, 0, i))
	}
	return seq
}

func TestApplySelection_NilIsFullSequence(t *testing.T) {
	seq := days(5)

	rng := domain.ApplySelection(seq, nil)
	if rng.Len() != 5 {
		t.Fatalf("expected 5 dates, got %d", rng.Len())
	}
	for i := range seq {
		d, ok := rng.At(i)
		if !ok || d != seq[i] {
			t.Fatalf("At(%d): expected %v, got %v", i, seq[i], d)
		}
	}
}

func TestApplySelection_FullBoundsRoundTrip(t *testing.T) {
	seq := days(5)
	sel := domain.DateSelection(seq[0], seq[4])

	rng := domain.ApplySelection(seq, &sel)
	if rng.Len() != seq.Len() {
		t.Fatalf("expected full sequence, got %d dates", rng.Len())
	}
}

func TestApplySelection_ClosedInterval(t *testing.T) {
	seq := days(5)
	sel := domain.DateSelection(seq[1], seq[3])

	rng := domain.ApplySelection(seq, &sel)
	got := rng.Dates()
	if len(got) != 3 || got[0] != seq[1] || got[2] != seq[3] {
		t.Fatalf("unexpected range: %v", got)
	}
	if rng.SliderMax() != 2 {
		t.Fatalf("expected slider max 2, got %d", rng.SliderMax())
	}
}

func TestApplySelection_GapYieldsEmptyRange(t *testing.T) {
	seq := days(2)
	from := seq[0].Time().Add(3 * time.Hour)
	to := seq[1].Time().Add(-3 * time.Hour)
	sel := domain.NewSelection(from, to)

	rng := domain.ApplySelection(seq, &sel)
	if !rng.Empty() {
		t.Fatalf("expected empty range, got %v", rng.Dates())
	}
	if rng.SliderMax() != -1 {
		t.Fatalf("expected slider max -1, got %d", rng.SliderMax())
	}
	if _, ok := rng.At(0); ok {
		t.Fatalf("expected At(0) to miss on empty range")
	}
}

func TestNewSelection_NormalisesReversedBounds(t *testing.T) {
	seq := days(5)
	sel := domain.NewSelection(seq[3].Time(), seq[1].Time())

	if !sel.From.Equal(seq[1].Time()) || !sel.To.Equal(seq[3].Time()) {
		t.Fatalf("expected ordered bounds, got %v..%v", sel.From, sel.To)
	}
}

func TestRangeFilter_ReplacesWholesale(t *testing.T) {
	seq := days(5)
	f := domain.NewRangeFilter(seq)

	before := f.Active()
	sel := domain.DateSelection(seq[2], seq[2])
	after := f.Apply(&sel)

	if before.Len() != 5 {
		t.Fatalf("earlier snapshot changed: %d", before.Len())
	}
	if after.Len() != 1 || f.Active().Len() != 1 {
		t.Fatalf("expected 1 date active, got %d", after.Len())
	}
	if f.Selection() == nil {
		t.Fatalf("expected selection to be kept")
	}

	cleared := f.Apply(nil)
	if cleared.Len() != 5 || f.Selection() != nil {
		t.Fatalf("expected reset to full sequence")
	}
}

func TestTimeScale_InvertAndPosition(t *testing.T) {
	seq := days(11)
	scale := domain.NewTimeScale(seq, 100)

	if got := scale.Invert(0); !got.Equal(seq[0].Time()) {
		t.Fatalf("Invert(0) = %v", got)
	}
	if got := scale.Invert(100); !got.Equal(seq[10].Time()) {
		t.Fatalf("Invert(100) = %v", got)
	}
	if got := scale.Invert(50); !got.Equal(seq[5].Time()) {
		t.Fatalf("Invert(50) = %v", got)
	}
	if got := scale.Position(seq[5].Time()); got != 50 {
		t.Fatalf("Position = %v", got)
	}

	sel, err := scale.PixelSelection(60, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng := domain.ApplySelection(seq, &sel)
	if rng.Len() != 5 {
		t.Fatalf("expected 5 dates in [20px,60px], got %d", rng.Len())
	}

	if _, err := (domain.TimeScale{}).PixelSelection(0, 1); err == nil {
		t.Fatalf("expected error for zero-width scale")
	}
}

func TestTimeScale_ClampsOffsets(t *testing.T) {
	seq := days(11)
	scale := domain.NewTimeScale(seq, 100)

	if got := scale.Invert(-40); !got.Equal(seq[0].Time()) {
		t.Fatalf("Invert(-40) = %v", got)
	}
	if got := scale.Invert(1e300); !got.Equal(seq[10].Time()) {
		t.Fatalf("Invert(1e300) = %v", got)
	}

	for _, x1 := range []float64{5000, 1e300} {
		sel, err := scale.PixelSelection(0, x1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := domain.ApplySelection(seq, &sel).Len(); got != 11 {
			t.Fatalf("x1=%v: expected all 11 dates, got %d", x1, got)
		}
	}

	sel, err := scale.PixelSelection(-1e300, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := domain.ApplySelection(seq, &sel).Len(); got != 2 {
		t.Fatalf("expected 2 dates in [0px,10px], got %d", got)
	}
}
