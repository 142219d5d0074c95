package dto

// StockQuote mirrors the provider's quote payload. C is the current price;
// the remaining fields keep the provider's single-letter naming so cached
// payloads stay readable next to the raw API.
type StockQuote struct {
	C  float64 `json:"c"`
	H  float64 `json:"h"`
	L  float64 `json:"l"`
	O  float64 `json:"o"`
	Pc float64 `json:"pc"`
}

type StockProfile struct {
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Exchange string `json:"exchange"`
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Logo     string `json:"logo"`
	WebURL   string `json:"weburl"`
}

// StockData is the cached payload for one symbol: profile and quote together,
// either of which may be empty after a partial provider failure.
type StockData struct {
	Profile StockProfile `json:"profile"`
	Quote   StockQuote   `json:"quote"`
}
