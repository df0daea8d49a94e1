package views

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/repository/jsonfile"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/query"
)

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	dir := t.TempDir()
	repo, err := jsonfile.NewFileRepository(dir, filepath.Join(dir, "backups"), zap.NewNop())
	require.NoError(t, err)
	store := ledger.NewStore(repo, zap.NewNop())
	require.NoError(t, store.Load(context.Background()))
	return store
}

func addCustomer(t *testing.T, store *ledger.Store, name string, kind models.CustomerType) models.Customer {
	t.Helper()
	c, err := store.AddCustomer(context.Background(), ledger.CustomerInput{Name: name, Type: kind})
	require.NoError(t, err)
	return c
}

func addTransaction(t *testing.T, store *ledger.Store, customerID, date, milkType string, quantity, rate int64) models.Transaction {
	t.Helper()
	tx, err := store.AddTransaction(context.Background(), ledger.TransactionInput{
		CustomerID: customerID,
		Quantity:   decimal.NewFromInt(quantity),
		Rate:       decimal.NewFromInt(rate),
		MilkType:   milkType,
		Date:       date,
	})
	require.NoError(t, err)
	return tx
}

func TestDashboardTotalsAndDefaultSort(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	buyer := addCustomer(t, store, "Rajesh", models.CustomerBuyer)
	seller := addCustomer(t, store, "Suresh", models.CustomerSeller)

	// Buyer owes 500, seller is owed 800.
	addTransaction(t, store, buyer.ID, "2024-01-10", "Cow", 10, 50)
	addTransaction(t, store, seller.ID, "2024-01-10", "Buffalo", 20, 40)

	view := svc.Dashboard(Query{})

	assert.True(t, view.TotalOwedToYou.Equal(decimal.NewFromInt(500)))
	assert.True(t, view.TotalYouOwe.Equal(decimal.NewFromInt(800)))

	// Default order is name descending.
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Suresh", view.Items[0].Name)
	assert.Equal(t, "Rajesh", view.Items[1].Name)
}

func TestDashboardRangeScopesTotalsAndActivity(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	active := addCustomer(t, store, "Rajesh", models.CustomerBuyer)
	dormant := addCustomer(t, store, "Suresh", models.CustomerBuyer)

	addTransaction(t, store, active.ID, "2024-01-10", "Cow", 10, 50)
	addTransaction(t, store, dormant.ID, "2023-06-01", "Cow", 4, 50)

	view := svc.Dashboard(Query{Range: query.DateRange{Start: "2024-01-01", End: "2024-01-31"}})

	// Only January activity contributes to the headline totals.
	assert.True(t, view.TotalOwedToYou.Equal(decimal.NewFromInt(500)))
	assert.True(t, view.TotalYouOwe.IsZero())

	// The table keeps only customers active in the range, even though the
	// dormant customer carries a nonzero overall balance.
	require.Len(t, view.Items, 1)
	assert.Equal(t, active.ID, view.Items[0].CustomerID)
	assert.True(t, view.Items[0].Balance.Equal(decimal.NewFromInt(500)))
}

func TestDashboardSearchFiltersByName(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	addCustomer(t, store, "Rajesh", models.CustomerBuyer)
	addCustomer(t, store, "Suresh", models.CustomerSeller)

	view := svc.Dashboard(Query{Search: "raj"})

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Rajesh", view.Items[0].Name)
}

func TestCustomersDefaultSortNewestFirst(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	addCustomer(t, store, "Rajesh", models.CustomerBuyer)
	addCustomer(t, store, "Suresh", models.CustomerSeller)

	view := svc.Customers(Query{})

	require.Len(t, view.Items, 2)
	assert.Equal(t, "C02", view.Items[0].ID)
	assert.Equal(t, "C01", view.Items[1].ID)
}

func TestTransactionsDefaultSortBreaksDateTiesOnID(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	buyer := addCustomer(t, store, "Rajesh", models.CustomerBuyer)

	addTransaction(t, store, buyer.ID, "2024-01-10", "Cow", 10, 50)
	addTransaction(t, store, buyer.ID, "2024-01-10", "Cow", 5, 50)
	addTransaction(t, store, buyer.ID, "2024-01-05", "Cow", 2, 50)

	view := svc.Transactions(Query{})

	require.Len(t, view.Items, 3)
	assert.Equal(t, "T02", view.Items[0].ID)
	assert.Equal(t, "T01", view.Items[1].ID)
	assert.Equal(t, "T03", view.Items[2].ID)
}

func TestTransactionsResolveCustomerColumns(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	buyer := addCustomer(t, store, "Rajesh", models.CustomerBuyer)
	addTransaction(t, store, buyer.ID, "2024-01-05", "Cow", 10, 50)

	view := svc.Transactions(Query{})

	require.Len(t, view.Items, 1)
	row := view.Items[0]
	assert.Equal(t, "Rajesh", row.CustomerName)
	assert.Equal(t, "Buyer", row.CustomerTypeDisplay)
	assert.Equal(t, "5 Jan 2024", row.DateDisplay)
	assert.True(t, row.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestTransactionsMilkTotalsCoverFilteredSet(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 1, zap.NewNop())
	buyer := addCustomer(t, store, "Rajesh", models.CustomerBuyer)

	addTransaction(t, store, buyer.ID, "2024-01-10", "Cow", 10, 50)
	addTransaction(t, store, buyer.ID, "2024-01-12", "Cow", 5, 50)
	addTransaction(t, store, buyer.ID, "2024-02-01", "Buffalo", 99, 70)

	view := svc.Transactions(Query{Range: query.DateRange{Start: "2024-01-01", End: "2024-01-31"}})

	// Page size 1, but totals span both January rows.
	require.Len(t, view.Items, 1)
	require.Len(t, view.MilkTotals, 1)
	assert.Equal(t, "Cow", view.MilkTotals[0].MilkType)
	assert.True(t, view.MilkTotals[0].Quantity.Equal(decimal.NewFromInt(15)))
}

func TestPaymentsListing(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	buyer := addCustomer(t, store, "Rajesh", models.CustomerBuyer)

	_, err := store.AddPayment(context.Background(), ledger.PaymentInput{
		CustomerID: buyer.ID,
		Type:       models.PaymentReceivedFromBuyer,
		Amount:     decimal.NewFromInt(300),
		Date:       "2024-01-15",
	})
	require.NoError(t, err)

	view := svc.Payments(Query{})

	require.Len(t, view.Items, 1)
	row := view.Items[0]
	assert.Equal(t, "Rajesh", row.CustomerName)
	assert.Equal(t, "Received from Buyer", row.TypeDisplay)
	assert.Equal(t, "15 Jan 2024", row.DateDisplay)
}

func TestOutOfRangePageResetsToFirst(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 10, zap.NewNop())
	addCustomer(t, store, "Rajesh", models.CustomerBuyer)

	view := svc.Customers(Query{Page: 5})

	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, 1)
}

func TestPaginationLayoutInView(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 2, zap.NewNop())
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		addCustomer(t, store, name, models.CustomerBuyer)
	}

	view := svc.Customers(Query{Page: 3})

	assert.Equal(t, 3, view.Page)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, []int{1, 2, 3}, view.Layout.Pages)
	assert.True(t, view.Layout.HasPrev)
	assert.False(t, view.Layout.HasNext)
}
