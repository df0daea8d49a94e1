package models

import "github.com/shopspring/decimal"

// PaymentType records the direction money moved.
type PaymentType string

const (
	// PaymentPaidToSeller settles what the business owes a milk supplier.
	PaymentPaidToSeller PaymentType = "paid_to_seller"
	// PaymentReceivedFromBuyer settles what a buyer owes the business.
	PaymentReceivedFromBuyer PaymentType = "received_from_buyer"
)

// Valid reports whether the type is one of the two known values.
func (t PaymentType) Valid() bool {
	return t == PaymentPaidToSeller || t == PaymentReceivedFromBuyer
}

// Display returns the human readable label used in listings.
func (t PaymentType) Display() string {
	switch t {
	case PaymentPaidToSeller:
		return "Paid to Seller"
	case PaymentReceivedFromBuyer:
		return "Received from Buyer"
	default:
		return "N/A"
	}
}

// Payment is a settlement against a customer's running balance.
type Payment struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Type       PaymentType     `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}
