// Package dto defines the HTTP response shapes for the catalog feature.
package dto

// SymbolInfo is the static metadata returned for a single symbol.
type SymbolInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
	Isin     string `json:"isin"`
}

// RefreshResponse reports the outcome of a forced catalog refresh.
type RefreshResponse struct {
	State   string `json:"state"`
	Symbols int    `json:"symbols"`
}
