package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// TransactionInput carries the editable transaction fields. The transaction
// type is not part of the input; it follows from the customer's type.
type TransactionInput struct {
	CustomerID string
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	MilkType   string
	Shift      string
	Date       string
}

func (in TransactionInput) validate() error {
	if in.Quantity.IsNegative() {
		return invalidField("quantity", "must not be negative")
	}
	if in.Rate.IsNegative() {
		return invalidField("rate", "must not be negative")
	}
	if in.MilkType == "" {
		return invalidField("milkType", "milk type is required")
	}
	return nil
}

// transactionTypeFor derives the trade direction: the business buys from
// sellers and sells to buyers.
func transactionTypeFor(customer models.Customer) models.TransactionType {
	if customer.Type == models.CustomerSeller {
		return models.TransactionBuy
	}
	return models.TransactionSell
}

// AddTransaction validates the input, resolves the customer and appends the
// trade. An empty date defaults to today.
func (s *Store) AddTransaction(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	if err := in.validate(); err != nil {
		return models.Transaction{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.findCustomerLocked(in.CustomerID)
	if !ok {
		return models.Transaction{}, invalidField("customerId", "customer does not exist")
	}

	transaction := models.Transaction{
		ID:         s.ids.Next(KindTransaction),
		CustomerID: in.CustomerID,
		Type:       transactionTypeFor(customer),
		Quantity:   in.Quantity,
		Rate:       in.Rate,
		MilkType:   in.MilkType,
		Shift:      in.Shift,
		Date:       date,
	}
	s.transactions = append(s.transactions, transaction)

	if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
		return models.Transaction{}, err
	}

	s.logger.Info("transaction added",
		zap.String("id", transaction.ID),
		zap.String("customer_id", transaction.CustomerID),
		zap.String("type", string(transaction.Type)))
	return transaction, nil
}

// UpdateTransaction replaces the editable fields of an existing transaction,
// re-deriving the type from the (possibly different) customer.
func (s *Store) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (models.Transaction, error) {
	if err := in.validate(); err != nil {
		return models.Transaction{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.findCustomerLocked(in.CustomerID)
	if !ok {
		return models.Transaction{}, invalidField("customerId", "customer does not exist")
	}

	for i, t := range s.transactions {
		if t.ID != id {
			continue
		}
		t.CustomerID = in.CustomerID
		t.Type = transactionTypeFor(customer)
		t.Quantity = in.Quantity
		t.Rate = in.Rate
		t.MilkType = in.MilkType
		t.Shift = in.Shift
		t.Date = date
		s.transactions[i] = t

		if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
			return models.Transaction{}, err
		}

		s.logger.Info("transaction updated", zap.String("id", id))
		return t, nil
	}

	return models.Transaction{}, ErrNotFound
}

// DeleteTransaction removes a single transaction.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := s.transactions[:0:0]
	found := false
	for _, t := range s.transactions {
		if t.ID == id {
			found = true
			continue
		}
		transactions = append(transactions, t)
	}
	if !found {
		return ErrNotFound
	}

	s.transactions = transactions
	if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", zap.String("id", id))
	return nil
}
