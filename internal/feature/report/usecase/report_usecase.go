// Package usecase implements the business logic for the interactive stock report.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	catalogentity "stock_visualizer/internal/feature/catalog/domain/entity"
	"stock_visualizer/internal/feature/report/domain/entity"
)

// HistoryDays is the length of the synthetic price series behind each chart.
const HistoryDays = 30

// ErrQuoteUnavailable is returned by Select when the live quote for a symbol
// could not be fetched. The entry is not added; the report stays as it was.
var ErrQuoteUnavailable = errors.New("report: quote unavailable")

// QuoteFetcher abstracts the catalog's live quote lookup.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type QuoteFetcher interface {
	GetQuote(ctx context.Context, symbol string) (catalogentity.Quote, bool)
}

// ReportUsecase holds the ordered list of stock entries shown in the report
// and the currently selected index. Selecting an unknown symbol fetches its
// quote and appends it; selecting a known one just reselects it.
type ReportUsecase struct {
	quotes QuoteFetcher
	rng    *rand.Rand
	now    func() time.Time

	mu       sync.Mutex
	entries  []entity.StockEntry
	selected int
}

// NewReportUsecase creates an empty report backed by the given quote source.
func NewReportUsecase(quotes QuoteFetcher, rng *rand.Rand) *ReportUsecase {
	return &ReportUsecase{quotes: quotes, rng: rng, now: time.Now, selected: -1}
}

// Select returns the entry for symbol, fetching and adding it on first use.
func (r *ReportUsecase) Select(ctx context.Context, symbol string) (entity.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.Symbol == symbol {
			r.selected = i
			return e, nil
		}
	}

	q, ok := r.quotes.GetQuote(ctx, symbol)
	if !ok {
		return entity.StockEntry{}, ErrQuoteUnavailable
	}

	e := entity.StockEntry{
		Symbol:    symbol,
		Price:     q.Close,
		ChangePct: q.ChangePct * 100,
		Volume:    q.Volume,
		MarketCap: marketCap(q.Close, q.Volume),
		History:   GenerateHistory(r.rng, q.Close, HistoryDays),
	}
	r.entries = append(r.entries, e)
	r.selected = len(r.entries) - 1
	slog.Info("added stock to report", "symbol", symbol, "price", q.Close)
	return e, nil
}

// Selected returns the currently selected entry, or false if nothing has
// been selected yet.
func (r *ReportUsecase) Selected() (entity.StockEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected < 0 || r.selected >= len(r.entries) {
		return entity.StockEntry{}, false
	}
	return r.entries[r.selected], true
}

// Entries returns a copy of the report rows in insertion order.
func (r *ReportUsecase) Entries() []entity.StockEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.StockEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// WriteTextReport writes a fixed-width console report of all entries.
func (r *ReportUsecase) WriteTextReport(w io.Writer) error {
	entries := r.Entries()
	line := strings.Repeat("=", 80)
	sep := strings.Repeat("-", 80)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "STOCK MARKET REPORT - %s\n", r.now().Format("January 02, 2006 at 3:04 PM"))
	fmt.Fprintln(w, line)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No stock data available.")
		fmt.Fprintln(w, line)
		return nil
	}

	fmt.Fprintf(w, "%-10s %-15s %-15s %-15s %-15s\n", "Symbol", "Price", "Change", "Volume", "Market Cap")
	fmt.Fprintln(w, sep)

	var total float64
	for _, e := range entries {
		fmt.Fprintf(w, "%-10s %-15s %-15s %-15s %-15s\n",
			e.Symbol, FormatCurrency(e.Price), FormatChange(e.ChangePct), FormatVolume(e.Volume), e.MarketCap)
		total += e.Price
	}

	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Average Price: %s\n", FormatCurrency(total/float64(len(entries))))
	fmt.Fprintln(w, line)
	return nil
}

// marketCap derives a display market cap from price and volume when the
// upstream quote carries none.
func marketCap(price float64, volume int64) string {
	if price <= 0 || volume <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.1fB", price*float64(volume)/1_000_000_000)
}
