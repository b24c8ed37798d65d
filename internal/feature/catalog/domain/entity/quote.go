package entity

// Quote is a real-time price snapshot for a single symbol.
// It is fetched on demand and never cached.
type Quote struct {
	Symbol    string  // Ticker symbol the quote belongs to
	Close     float64 // Last close price
	ChangePct float64 // Fractional change since previous close (0.01 = 1%)
	Volume    int64   // Trading volume
}
