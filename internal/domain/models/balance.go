package models

import "github.com/shopspring/decimal"

// CustomerBalance is the derived net position for one customer. Positive
// means the customer owes the business, negative means the business owes the
// customer. Balances are recomputed from scratch on every read and never
// persisted.
type CustomerBalance struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name"`
	Type       CustomerType    `json:"type"`
	Balance    decimal.Decimal `json:"balance"`
}
