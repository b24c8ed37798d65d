// Package entity defines the domain models for the report feature.
package entity

// StockEntry is one row of the interactive report: a live snapshot plus a
// synthetic 30-day price series for the chart. Entries are presentation
// state only and are never persisted.
type StockEntry struct {
	Symbol    string    // Ticker symbol
	Price     float64   // Last close price
	ChangePct float64   // Percent change since previous close (1.0 = 1%)
	Volume    int64     // Trading volume
	MarketCap string    // Display string, e.g. "$2.4B" or "N/A"
	History   []float64 // Daily price series, oldest first
}
