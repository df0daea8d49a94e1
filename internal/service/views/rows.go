package views

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/service/query"
)

// Row types resolve each listing column exactly once, so the filter and sort
// engines share one accessor per derived column instead of each looking up
// customers on their own.

// BalanceRow is one line of the dashboard balances table.
type BalanceRow struct {
	CustomerID  string              `json:"customerId"`
	Name        string              `json:"name"`
	Type        models.CustomerType `json:"type"`
	TypeDisplay string              `json:"typeDisplay"`
	Balance     decimal.Decimal     `json:"balance"`
}

func (r BalanceRow) RowID() string { return r.CustomerID }

func (r BalanceRow) Field(column string) (query.Field, bool) {
	switch column {
	case "id":
		return query.IDField(r.CustomerID), true
	case "name":
		return query.TextField(r.Name), true
	case "type":
		return query.TextField(string(r.Type)), true
	case "balance":
		return query.NumberField(r.Balance), true
	default:
		return query.Field{}, false
	}
}

// CustomerRow is one line of the customer listing.
type CustomerRow struct {
	models.Customer
	TypeDisplay string `json:"typeDisplay"`
}

func (r CustomerRow) RowID() string { return r.ID }

func (r CustomerRow) Field(column string) (query.Field, bool) {
	switch column {
	case "id":
		return query.IDField(r.ID), true
	case "name":
		return query.TextField(r.Name), true
	case "type":
		return query.TextField(string(r.Type)), true
	case "phone":
		return query.TextField(r.Phone), true
	case "defaultQuantity":
		return query.NumberField(r.DefaultQuantity), true
	case "defaultRate":
		return query.NumberField(r.DefaultRate), true
	case "defaultMilkType":
		return query.TextField(r.DefaultMilkType), true
	default:
		return query.Field{}, false
	}
}

// TransactionRow augments a transaction with the customer lookup and the
// derived total for display, filtering and sorting.
type TransactionRow struct {
	models.Transaction
	CustomerName        string          `json:"customerName"`
	CustomerTypeDisplay string          `json:"customerTypeDisplay"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	DateDisplay         string          `json:"dateDisplay"`
}

func (r TransactionRow) RowID() string { return r.ID }

func (r TransactionRow) Field(column string) (query.Field, bool) {
	switch column {
	case "id":
		return query.IDField(r.ID), true
	case "date":
		return query.DateField(r.Date), true
	case "customerName":
		return query.TextField(r.CustomerName), true
	case "customerTypeDisplay":
		return query.TextField(r.CustomerTypeDisplay), true
	case "quantity":
		return query.NumberField(r.Quantity), true
	case "rate":
		return query.NumberField(r.Rate), true
	case "milkType":
		return query.TextField(r.MilkType), true
	case "shift":
		return query.TextField(r.Shift), true
	case "totalAmount":
		return query.NumberField(r.TotalAmount), true
	default:
		return query.Field{}, false
	}
}

// PaymentRow augments a payment with the customer lookup.
type PaymentRow struct {
	models.Payment
	CustomerName string `json:"customerName"`
	TypeDisplay  string `json:"typeDisplay"`
	DateDisplay  string `json:"dateDisplay"`
}

func (r PaymentRow) RowID() string { return r.ID }

func (r PaymentRow) Field(column string) (query.Field, bool) {
	switch column {
	case "id":
		return query.IDField(r.ID), true
	case "date":
		return query.DateField(r.Date), true
	case "customerName":
		return query.TextField(r.CustomerName), true
	case "type":
		return query.TextField(string(r.Type)), true
	case "amount":
		return query.NumberField(r.Amount), true
	default:
		return query.Field{}, false
	}
}
