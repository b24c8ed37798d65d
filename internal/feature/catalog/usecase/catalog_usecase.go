// Package usecase implements the business logic for the symbol catalog.
package usecase

import (
	"context"
	"log/slog"
	"sync"

	"stock_visualizer/internal/feature/catalog/domain/entity"
)

// State is the typed outcome of catalog initialization, so callers can tell
// "no symbols because upstream is down" from "exchange truly empty" without
// reading logs.
type State string

const (
	// StateReady means the catalog is populated from cache or a successful fetch.
	StateReady State = "ready"
	// StateDegraded means every source failed and the catalog is empty.
	// The process keeps running; lookups return empty results.
	StateDegraded State = "degraded"
)

// CacheRepository abstracts durable storage of the symbol catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CacheRepository interface {
	Load() (entity.CacheFile, error)
	Save(stocks map[string]entity.SymbolRecord, symbols []string) error
}

// ExchangeRepository abstracts the remote market-data API.
type ExchangeRepository interface {
	ListSymbols(ctx context.Context) ([]entity.SymbolRecord, error)
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// Catalog is the single source of truth for which symbols exist and what
// static metadata each one has. It fetches the full exchange list at most
// once per explicit refresh and serves every lookup from memory.
type Catalog struct {
	cache    CacheRepository
	exchange ExchangeRepository

	// initMu serializes whole Initialize runs so the saved cache file always
	// reflects the pair that was adopted last.
	initMu sync.Mutex

	mu      sync.RWMutex
	stocks  map[string]entity.SymbolRecord
	symbols []string
	state   State
}

// NewCatalog creates an empty Catalog. Call Initialize before serving lookups.
func NewCatalog(cache CacheRepository, exchange ExchangeRepository) *Catalog {
	return &Catalog{
		cache:    cache,
		exchange: exchange,
		stocks:   map[string]entity.SymbolRecord{},
		state:    StateDegraded,
	}
}

// Initialize loads the catalog, preferring the cache unless forceRefresh is
// set. It blocks until done; no partial mapping/sequence pair is ever visible.
// Concurrent calls run one at a time, so memory and the cache file cannot end
// up reflecting different fetches.
// Failures degrade to an empty catalog with a log line, never an error.
func (c *Catalog) Initialize(ctx context.Context, forceRefresh bool) State {
	c.initMu.Lock()
	defer c.initMu.Unlock()

	if !forceRefresh {
		if cf, err := c.cache.Load(); err == nil {
			c.adopt(cf.Stocks, cf.Symbols, StateReady)
			slog.Info("loaded symbols from cache", "count", len(cf.Symbols))
			return StateReady
		} else {
			slog.Info("cache unavailable, fetching from API", "error", err)
		}
	}

	records, err := c.exchange.ListSymbols(ctx)
	if err != nil {
		// Not retried. The catalog stays empty until the next explicit refresh.
		slog.Error("failed to fetch symbol list", "error", err)
		c.adopt(map[string]entity.SymbolRecord{}, nil, StateDegraded)
		return StateDegraded
	}

	stocks := make(map[string]entity.SymbolRecord, len(records))
	symbols := make([]string, 0, len(records))
	for _, r := range records {
		// Last write wins on duplicate codes; the sequence keeps the
		// position of the first occurrence and stays duplicate-free.
		if _, seen := stocks[r.Code]; !seen {
			symbols = append(symbols, r.Code)
		}
		stocks[r.Code] = r
	}
	c.adopt(stocks, symbols, StateReady)
	slog.Info("fetched symbols from API", "count", len(symbols))

	if err := c.cache.Save(stocks, symbols); err != nil {
		slog.Error("failed to save symbol cache", "error", err)
	}
	return StateReady
}

// Refresh unconditionally re-fetches the symbol list and overwrites the cache.
func (c *Catalog) Refresh(ctx context.Context) State {
	return c.Initialize(ctx, true)
}

// GetSymbols returns a copy of the known symbols in API response order.
func (c *Catalog) GetSymbols() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// GetStockInfo returns the static metadata for symbol.
// A miss yields a zero record and false, never an error.
func (c *Catalog) GetStockInfo(symbol string) (entity.SymbolRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.stocks[symbol]
	return rec, ok
}

// GetQuote fetches a live price snapshot for symbol. It is independent of the
// symbol-list cache: no caching, no retry. Failure logs and returns false.
func (c *Catalog) GetQuote(ctx context.Context, symbol string) (entity.Quote, bool) {
	q, err := c.exchange.GetQuote(ctx, symbol)
	if err != nil {
		slog.Error("failed to fetch quote", "symbol", symbol, "error", err)
		return entity.Quote{}, false
	}
	return q, true
}

// State reports the outcome of the most recent Initialize or Refresh.
func (c *Catalog) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// adopt swaps in a freshly built mapping/sequence pair under the write lock.
// The pair is always replaced together, never patched incrementally.
func (c *Catalog) adopt(stocks map[string]entity.SymbolRecord, symbols []string, s State) {
	if stocks == nil {
		stocks = map[string]entity.SymbolRecord{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stocks = stocks
	c.symbols = symbols
	c.state = s
}
