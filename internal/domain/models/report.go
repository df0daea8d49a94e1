package models

import "github.com/shopspring/decimal"

// PeriodReport aggregates trading activity over a date range.
type PeriodReport struct {
	TotalBought      decimal.Decimal `json:"totalBought"`
	TotalSold        decimal.Decimal `json:"totalSold"`
	TotalBoughtValue decimal.Decimal `json:"totalBoughtValue"`
	TotalSoldValue   decimal.Decimal `json:"totalSoldValue"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalReceived    decimal.Decimal `json:"totalReceived"`
	GrossProfitLoss  decimal.Decimal `json:"grossProfitLoss"`
	Series           DailySeries     `json:"dailySeries"`
}

// DailySeries holds per-day bought and sold quantities as three parallel
// slices aligned by index, with dates sorted ascending. Days with no activity
// in the range are absent, so the series is sparse rather than a dense
// calendar.
type DailySeries struct {
	Dates  []string          `json:"dates"`
	Bought []decimal.Decimal `json:"bought"`
	Sold   []decimal.Decimal `json:"sold"`
}

// MilkTypeTotal sums quantity and value for one milk type across a listing.
type MilkTypeTotal struct {
	MilkType string          `json:"milkType"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}
