// Package entity defines the domain models for the catalog feature.
package entity

// SymbolRecord holds the static exchange metadata for one tradable security.
// Records are immutable once fetched; the catalog keys them by Code.
type SymbolRecord struct {
	Code     string `json:"Code"`     // Ticker symbol (e.g., "AAPL")
	Name     string `json:"Name"`     // Company name
	Country  string `json:"Country"`  // Listing country
	Exchange string `json:"Exchange"` // Exchange name (e.g., "NASDAQ")
	Currency string `json:"Currency"` // Trading currency
	Type     string `json:"Type"`     // Security type (e.g., "Common Stock")
	Isin     string `json:"Isin"`     // International Securities Identification Number
}

// CacheFile is the persisted form of the symbol catalog.
// Stocks and Symbols always describe the same set: the map carries the
// records, the slice carries API response order.
type CacheFile struct {
	Stocks   map[string]SymbolRecord `json:"stocks"`
	Symbols  []string                `json:"symbols"`
	CachedAt string                  `json:"cached_at"` // ISO-8601, set on save
}
