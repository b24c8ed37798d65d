// Package dto defines the HTTP response shapes for the report feature.
package dto

// StockResponse is one report entry as served to the view.
type StockResponse struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	ChangePct float64   `json:"change_pct"`
	Volume    int64     `json:"volume"`
	MarketCap string    `json:"market_cap"`
	Info      string    `json:"info"` // Preformatted one-line summary for the info label
	History   []float64 `json:"history"`
}
