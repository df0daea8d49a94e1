package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// CustomerInput carries the editable customer fields. Defaults pre-fill the
// transaction form for that customer.
type CustomerInput struct {
	Name            string
	Type            models.CustomerType
	Phone           string
	DefaultQuantity decimal.Decimal
	DefaultRate     decimal.Decimal
	DefaultMilkType string
}

func (in CustomerInput) validate() error {
	if in.Name == "" {
		return invalidField("name", "customer name is required")
	}
	if !in.Type.Valid() {
		return invalidField("type", "must be buyer or seller")
	}
	return nil
}

// AddCustomer validates the input, allocates an ID and appends the customer.
func (s *Store) AddCustomer(ctx context.Context, in CustomerInput) (models.Customer, error) {
	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := models.Customer{
		ID:              s.ids.Next(KindCustomer),
		Name:            in.Name,
		Type:            in.Type,
		Phone:           in.Phone,
		DefaultQuantity: in.DefaultQuantity,
		DefaultRate:     in.DefaultRate,
		DefaultMilkType: in.DefaultMilkType,
	}
	s.customers = append(s.customers, customer)

	if err := s.repo.SaveCustomers(ctx, s.customers); err != nil {
		return models.Customer{}, err
	}

	s.logger.Info("customer added", zap.String("id", customer.ID), zap.String("name", customer.Name))
	return customer, nil
}

// UpdateCustomer replaces the editable fields of an existing customer. The ID
// is immutable once assigned.
func (s *Store) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (models.Customer, error) {
	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.customers {
		if c.ID != id {
			continue
		}
		c.Name = in.Name
		c.Type = in.Type
		c.Phone = in.Phone
		c.DefaultQuantity = in.DefaultQuantity
		c.DefaultRate = in.DefaultRate
		c.DefaultMilkType = in.DefaultMilkType
		s.customers[i] = c

		if err := s.repo.SaveCustomers(ctx, s.customers); err != nil {
			return models.Customer{}, err
		}

		s.logger.Info("customer updated", zap.String("id", id))
		return c, nil
	}

	return models.Customer{}, ErrNotFound
}

// DeleteCustomer removes the customer and cascades to every transaction and
// payment referencing them, in one atomic mutation.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findCustomerLocked(id); !ok {
		return ErrNotFound
	}

	customers := s.customers[:0:0]
	for _, c := range s.customers {
		if c.ID != id {
			customers = append(customers, c)
		}
	}

	transactions := s.transactions[:0:0]
	removedTransactions := 0
	for _, t := range s.transactions {
		if t.CustomerID == id {
			removedTransactions++
			continue
		}
		transactions = append(transactions, t)
	}

	payments := s.payments[:0:0]
	removedPayments := 0
	for _, p := range s.payments {
		if p.CustomerID == id {
			removedPayments++
			continue
		}
		payments = append(payments, p)
	}

	s.customers = customers
	s.transactions = transactions
	s.payments = payments

	if err := s.repo.SaveCustomers(ctx, s.customers); err != nil {
		return err
	}
	if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
		return err
	}
	if err := s.repo.SavePayments(ctx, s.payments); err != nil {
		return err
	}

	s.logger.Info("customer deleted",
		zap.String("id", id),
		zap.Int("cascaded_transactions", removedTransactions),
		zap.Int("cascaded_payments", removedPayments))
	return nil
}
