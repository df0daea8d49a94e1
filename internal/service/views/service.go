// Package views assembles display-ready pages for the UI layer. Every call
// recomputes from a full store snapshot — balances, filter, sort, paginate —
// so there is no cached view state to invalidate after a mutation.
package views

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/query"
	"github.com/mamadbah2/dairyledger/internal/service/reporting"
)

// Query is the view-state a listing request carries: search term, date
// range, sort configuration and requested page.
type Query struct {
	Search string
	Range  query.DateRange
	Sort   query.SortConfig
	Page   int
}

// Service builds listing pages from the ledger store.
type Service struct {
	store    *ledger.Store
	pageSize int
	logger   *zap.Logger
}

// NewService wires a view service over the store.
func NewService(store *ledger.Store, pageSize int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{store: store, pageSize: pageSize, logger: logger}
}

// DashboardView is the balances table plus the headline totals.
type DashboardView struct {
	TotalOwedToYou decimal.Decimal `json:"totalOwedToYou"`
	TotalYouOwe    decimal.Decimal `json:"totalYouOwe"`
	Items          []BalanceRow    `json:"items"`
	Page           int             `json:"page"`
	Layout         query.Layout    `json:"layout"`
}

// CustomerListView is one page of the customer listing.
type CustomerListView struct {
	Items  []CustomerRow `json:"items"`
	Page   int           `json:"page"`
	Layout query.Layout  `json:"layout"`
}

// TransactionListView is one page of the transaction listing together with
// per-milk-type totals over the whole filtered set.
type TransactionListView struct {
	Items      []TransactionRow       `json:"items"`
	MilkTotals []models.MilkTypeTotal `json:"milkTotals"`
	Page       int                    `json:"page"`
	Layout     query.Layout           `json:"layout"`
}

// PaymentListView is one page of the payment listing.
type PaymentListView struct {
	Items  []PaymentRow `json:"items"`
	Page   int          `json:"page"`
	Layout query.Layout `json:"layout"`
}

// Dashboard derives balances for every customer, filters them by search term
// and activity in the date range, and pages the result. The headline totals
// come from the scoped balance set when a range is set — events outside the
// range simply do not contribute — while the table filters the full balance
// set by activity.
func (s *Service) Dashboard(q Query) DashboardView {
	snap := s.store.Snapshot()

	totalsBalances := reporting.ComputeBalancesInRange(snap.Customers, snap.Transactions, snap.Payments, q.Range)
	owedToYou, youOwe := reporting.OwedTotals(totalsBalances)

	rows := make([]BalanceRow, 0, len(snap.Customers))
	for _, b := range reporting.ComputeBalances(snap.Customers, snap.Transactions, snap.Payments) {
		rows = append(rows, BalanceRow{
			CustomerID:  b.CustomerID,
			Name:        b.Name,
			Type:        b.Type,
			TypeDisplay: b.Type.Display(),
			Balance:     b.Balance,
		})
	}

	opts := query.Options{
		Search: q.Search,
		Fields: []string{"name", "type", "balance"},
		Range:  q.Range,
	}
	if !q.Range.IsZero() {
		opts.ActiveIDs = query.ActiveCustomerIDs(snap.Transactions, snap.Payments, q.Range)
	}

	filtered := query.Apply(rows, opts)
	sorted := query.Sort(filtered, sortOrDefault(q.Sort, "name", query.Descending))
	page, items, layout := paginate(sorted, q.Page, s.pageSize)

	return DashboardView{
		TotalOwedToYou: owedToYou,
		TotalYouOwe:    youOwe,
		Items:          items,
		Page:           page,
		Layout:         layout,
	}
}

// Customers filters the customer list by search term and activity in the
// date range, and pages the result.
func (s *Service) Customers(q Query) CustomerListView {
	snap := s.store.Snapshot()

	rows := make([]CustomerRow, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		rows = append(rows, CustomerRow{Customer: c, TypeDisplay: c.Type.Display()})
	}

	opts := query.Options{
		Search: q.Search,
		Fields: []string{"name", "type", "phone", "defaultQuantity", "defaultRate", "defaultMilkType", "id"},
		Range:  q.Range,
	}
	if !q.Range.IsZero() {
		opts.ActiveIDs = query.ActiveCustomerIDs(snap.Transactions, snap.Payments, q.Range)
	}

	filtered := query.Apply(rows, opts)
	sorted := query.Sort(filtered, sortOrDefault(q.Sort, "id", query.Descending))
	page, items, layout := paginate(sorted, q.Page, s.pageSize)

	return CustomerListView{Items: items, Page: page, Layout: layout}
}

// Transactions augments each transaction with the customer lookup, filters
// directly by the transaction date, and pages the result. Milk totals cover
// the filtered set, not just the visible page.
func (s *Service) Transactions(q Query) TransactionListView {
	snap := s.store.Snapshot()
	customersByID := indexCustomers(snap.Customers)

	rows := make([]TransactionRow, 0, len(snap.Transactions))
	for _, t := range snap.Transactions {
		name, typeDisplay := "Unknown", "N/A"
		if c, ok := customersByID[t.CustomerID]; ok {
			name, typeDisplay = c.Name, c.Type.Display()
		}
		rows = append(rows, TransactionRow{
			Transaction:         t,
			CustomerName:        name,
			CustomerTypeDisplay: typeDisplay,
			TotalAmount:         t.TotalAmount(),
			DateDisplay:         query.FormatDisplayDate(t.Date),
		})
	}

	filtered := query.Apply(rows, query.Options{
		Search: q.Search,
		Fields: []string{"date", "customerName", "customerTypeDisplay", "quantity", "rate", "milkType", "shift", "totalAmount", "id"},
		Range:  q.Range,
	})

	milkTotals := reporting.MilkTypeTotals(transactionsOf(filtered))

	sorted := query.Sort(filtered, sortOrDefault(q.Sort, "date", query.Descending))
	page, items, layout := paginate(sorted, q.Page, s.pageSize)

	return TransactionListView{Items: items, MilkTotals: milkTotals, Page: page, Layout: layout}
}

// Payments augments each payment with the customer lookup, filters directly
// by the payment date, and pages the result.
func (s *Service) Payments(q Query) PaymentListView {
	snap := s.store.Snapshot()
	customersByID := indexCustomers(snap.Customers)

	rows := make([]PaymentRow, 0, len(snap.Payments))
	for _, p := range snap.Payments {
		name := "Unknown"
		if c, ok := customersByID[p.CustomerID]; ok {
			name = c.Name
		}
		rows = append(rows, PaymentRow{
			Payment:      p,
			CustomerName: name,
			TypeDisplay:  p.Type.Display(),
			DateDisplay:  query.FormatDisplayDate(p.Date),
		})
	}

	filtered := query.Apply(rows, query.Options{
		Search: q.Search,
		Fields: []string{"date", "customerName", "type", "amount", "id"},
		Range:  q.Range,
	})

	sorted := query.Sort(filtered, sortOrDefault(q.Sort, "date", query.Descending))
	page, items, layout := paginate(sorted, q.Page, s.pageSize)

	return PaymentListView{Items: items, Page: page, Layout: layout}
}

// paginate clamps the requested page back to 1 when it falls outside the
// current result set, then slices the page and describes the button layout.
func paginate[R any](items []R, requested, pageSize int) (int, []R, query.Layout) {
	totalPages := (len(items) + pageSize - 1) / pageSize
	page := requested
	if page < 1 || page > totalPages {
		page = 1
	}
	pageItems := query.Page(items, page, pageSize)
	layout := query.DescribeLayout(len(items), page, pageSize, query.DefaultMaxButtons)
	return page, pageItems, layout
}

func sortOrDefault(cfg query.SortConfig, column string, direction query.Direction) query.SortConfig {
	if cfg.Column == "" {
		return query.SortConfig{Column: column, Direction: direction}
	}
	if cfg.Direction != query.Ascending && cfg.Direction != query.Descending {
		cfg.Direction = query.Ascending
	}
	return cfg
}

func indexCustomers(customers []models.Customer) map[string]models.Customer {
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return byID
}

func transactionsOf(rows []TransactionRow) []models.Transaction {
	out := make([]models.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.Transaction
	}
	return out
}
