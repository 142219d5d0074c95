package dto

type DividendResponse struct {
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Projected bool    `json:"projected"`
}

// AssetPerformance is the per-asset valuation result. All gain fields are
// USD-denominated; they stay zero when the asset is not a stock or when the
// cost basis or forex table is missing.
type AssetPerformance struct {
	ID                uint               `json:"id"`
	Type              string             `json:"type"`
	Symbol            *string            `json:"symbol"`
	Name              string             `json:"name"`
	Quantity          float64            `json:"quantity"`
	PurchasePrice     *float64           `json:"purchase_price"`
	PurchaseDate      *string            `json:"purchase_date"`
	Currency          string             `json:"currency"`
	CurrentPrice      float64            `json:"current_price"`
	CurrentValue      float64            `json:"current_value"`
	AssetGrowthUSD    float64            `json:"asset_growth_usd"`
	CurrencyGainUSD   float64            `json:"currency_gain_usd"`
	DividendIncomeUSD float64            `json:"dividend_income_usd"`
	TotalGainUSD      float64            `json:"total_gain"`
	Dividends         []DividendResponse `json:"dividends"`
}

type CreateAssetRequest struct {
	Type           string   `json:"type" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Symbol         string   `json:"symbol"`
	Quantity       float64  `json:"quantity" validate:"gte=0"`
	PurchasePrice  *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
	Currency       string   `json:"currency" validate:"omitempty,iso4217"`
	PurchaseFxRate float64  `json:"purchase_fx_rate" validate:"omitempty,gt=0"`
	PurchaseDate   string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	CurrentValue   float64  `json:"current_value" validate:"gte=0"`
}

type CreateDividendRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Projected bool    `json:"projected"`
}
