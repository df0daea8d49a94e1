// Package reporting derives balances and period aggregates from the raw
// ledger collections. Everything here is a pure computation over in-memory
// data; callers pass snapshots and render or persist the results themselves.
package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/service/query"
)

// ComputeBalances folds every transaction and payment into one net balance
// per customer, in customer-list order. Sells and payments to sellers add to
// the balance, buys and payments received subtract. Events referencing a
// customer that no longer exists are skipped; cascading deletes normally
// prevent them, but a stray record must not break the fold.
func ComputeBalances(customers []models.Customer, transactions []models.Transaction, payments []models.Payment) []models.CustomerBalance {
	balances := make([]models.CustomerBalance, len(customers))
	index := make(map[string]int, len(customers))
	for i, c := range customers {
		balances[i] = models.CustomerBalance{
			CustomerID: c.ID,
			Name:       c.Name,
			Type:       c.Type,
			Balance:    decimal.Zero,
		}
		index[c.ID] = i
	}

	for _, t := range transactions {
		i, ok := index[t.CustomerID]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionSell:
			balances[i].Balance = balances[i].Balance.Add(t.TotalAmount())
		case models.TransactionBuy:
			balances[i].Balance = balances[i].Balance.Sub(t.TotalAmount())
		}
	}

	for _, p := range payments {
		i, ok := index[p.CustomerID]
		if !ok {
			continue
		}
		switch p.Type {
		case models.PaymentReceivedFromBuyer:
			balances[i].Balance = balances[i].Balance.Sub(p.Amount)
		case models.PaymentPaidToSeller:
			balances[i].Balance = balances[i].Balance.Add(p.Amount)
		}
	}

	return balances
}

// ComputeBalancesInRange computes balances from only the events dated inside
// the range. This changes which events contribute to each sum rather than
// filtering the result, so a customer still appears with a zero balance when
// they had no activity in the period.
func ComputeBalancesInRange(customers []models.Customer, transactions []models.Transaction, payments []models.Payment, r query.DateRange) []models.CustomerBalance {
	if r.IsZero() {
		return ComputeBalances(customers, transactions, payments)
	}

	scopedTransactions := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if r.Contains(t.Date) {
			scopedTransactions = append(scopedTransactions, t)
		}
	}

	scopedPayments := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if r.Contains(p.Date) {
			scopedPayments = append(scopedPayments, p)
		}
	}

	return ComputeBalances(customers, scopedTransactions, scopedPayments)
}

// OwedTotals splits a balance set into the two dashboard headline figures:
// the sum owed to the business and the absolute sum the business owes.
func OwedTotals(balances []models.CustomerBalance) (owedToYou, youOwe decimal.Decimal) {
	owedToYou, youOwe = decimal.Zero, decimal.Zero
	for _, b := range balances {
		switch b.Balance.Sign() {
		case 1:
			owedToYou = owedToYou.Add(b.Balance)
		case -1:
			youOwe = youOwe.Add(b.Balance.Abs())
		}
	}
	return owedToYou, youOwe
}
