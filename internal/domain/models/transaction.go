package models

import "github.com/shopspring/decimal"

// TransactionType records the direction of a trade from the business's point
// of view. It is derived from the customer type, never chosen directly:
// sellers produce "buy" transactions, buyers produce "sell".
type TransactionType string

const (
	// TransactionBuy means the business bought milk from a seller.
	TransactionBuy TransactionType = "buy"
	// TransactionSell means the business sold milk to a buyer.
	TransactionSell TransactionType = "sell"
)

// Transaction is a single buy or sell event. Date is a plain YYYY-MM-DD
// string, matching the persisted format.
type Transaction struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Type       TransactionType `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	MilkType   string          `json:"milkType"`
	Shift      string          `json:"shift,omitempty"`
	Date       string          `json:"date"`
}

// TotalAmount is always derived, never stored.
func (t Transaction) TotalAmount() decimal.Decimal {
	return t.Quantity.Mul(t.Rate)
}
