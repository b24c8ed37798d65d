// Package dto defines the wire format of EODHD API responses.
package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// Number is a float64 that unmarshals from either a JSON number or a quoted
// numeric string. EODHD mixes both forms across endpoints.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	s := string(b)
	if s == "" || s == "null" || s == "NA" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*n = Number(f)
	return nil
}

// ExchangeSymbol is one entry of the exchange-symbol-list response.
type ExchangeSymbol struct {
	Code     string `json:"Code"`
	Name     string `json:"Name"`
	Country  string `json:"Country"`
	Exchange string `json:"Exchange"`
	Currency string `json:"Currency"`
	Type     string `json:"Type"`
	Isin     string `json:"Isin"`
}

// QuoteResponse is the real-time quote response. The percent-change field
// appears as change_pct or percent_change depending on the endpoint variant.
type QuoteResponse struct {
	Code          string `json:"code"`
	Close         Number `json:"close"`
	ChangePct     Number `json:"change_pct"`
	PercentChange Number `json:"percent_change"`
	Volume        Number `json:"volume"`
}
