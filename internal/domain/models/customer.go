package models

import "github.com/shopspring/decimal"

// CustomerType distinguishes the two sides of the milk trade.
type CustomerType string

const (
	// CustomerBuyer purchases milk from the business.
	CustomerBuyer CustomerType = "buyer"
	// CustomerSeller supplies milk to the business.
	CustomerSeller CustomerType = "seller"
)

// Valid reports whether the type is one of the two known values.
func (t CustomerType) Valid() bool {
	return t == CustomerBuyer || t == CustomerSeller
}

// Display returns the human readable label used in listings.
func (t CustomerType) Display() string {
	switch t {
	case CustomerSeller:
		return "Seller"
	case CustomerBuyer:
		return "Buyer"
	default:
		return "N/A"
	}
}

// Customer is a party the business trades milk with. The ID is assigned once
// by the allocator and never changes afterwards.
type Customer struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            CustomerType    `json:"type"`
	Phone           string          `json:"phone,omitempty"`
	DefaultQuantity decimal.Decimal `json:"defaultQuantity"`
	DefaultRate     decimal.Decimal `json:"defaultRate"`
	DefaultMilkType string          `json:"defaultMilkType,omitempty"`
}
