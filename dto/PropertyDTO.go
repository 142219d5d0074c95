package dto

type PropertyResponse struct {
	ID            uint    `json:"id"`
	Address       string  `json:"address"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	PurchaseDate  *string `json:"purchase_date"`
	RentalIncome  float64 `json:"rental_income"`
	Expenses      float64 `json:"expenses"`
	ROI           float64 `json:"roi"`
}

type CreatePropertyRequest struct {
	Address       string  `json:"address" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	CurrentValue  float64 `json:"current_value" validate:"gte=0"`
	PurchaseDate  string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	RentalIncome  float64 `json:"rental_income" validate:"gte=0"`
	Expenses      float64 `json:"expenses" validate:"gte=0"`
}

type NetWorthResponse struct {
	TotalAssets     float64 `json:"total_assets"`
	TotalProperties float64 `json:"total_properties"`
	NetWorth        float64 `json:"net_worth"`
}

type NetWorthSnapshotResponse struct {
	SnapshotDate    string  `json:"snapshot_date"`
	TotalAssets     float64 `json:"total_assets"`
	TotalProperties float64 `json:"total_properties"`
	NetWorth        float64 `json:"net_worth"`
}
