package chart

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func testPrices(n int) []float64 {
	rng := rand.New(rand.NewSource(7))
	prices := make([]float64, n)
	p := 150.0
	for i := range prices {
		p *= 1 + (rng.Float64()*4-2)/100
		prices[i] = p
	}
	return prices
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	r.now = func() time.Time { return time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	if err := r.Render(&buf, "AAPL", testPrices(30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output should be SVG")
	}
	if !strings.Contains(out, "AAPL - 30 Day Price Trend") {
		t.Error("title should name the symbol and series length")
	}
	// 30点・5刻みの場合、最初の目盛りは30日前の日付
	if !strings.Contains(out, "03/01") {
		t.Error("x axis should carry date labels counting back from today")
	}
	if !strings.Contains(out, "Lowest") || !strings.Contains(out, "Highest") {
		t.Error("legend should include the min/max markers")
	}
}

func TestRenderer_Render_EmptySeries(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	var buf bytes.Buffer

	err := r.Render(&buf, "AAPL", nil)
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on validation failure")
	}
}

func TestRenderer_DateTicks(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	r.now = func() time.Time { return time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC) }

	ticks := r.dateTicks(30)

	// 0, 5, ..., 25 の6本 + 右端のスパン用に29
	if len(ticks) != 7 {
		t.Fatalf("expected 7 ticks, got %d", len(ticks))
	}
	if ticks[0].Value != 0 || ticks[0].Label != "03/01" {
		t.Errorf("first tick should be the date 30 days back: %+v", ticks[0])
	}
	if ticks[5].Value != 25 || ticks[5].Label != "03/26" {
		t.Errorf("ticks should step by five days: %+v", ticks[5])
	}
	if last := ticks[len(ticks)-1]; last.Value != 29 || last.Label != "" {
		t.Errorf("final tick should span the x range unlabeled: %+v", last)
	}
}
