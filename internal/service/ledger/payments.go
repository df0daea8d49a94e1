package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// PaymentInput carries the editable payment fields.
type PaymentInput struct {
	CustomerID string
	Type       models.PaymentType
	Amount     decimal.Decimal
	Date       string
}

func (in PaymentInput) validate() error {
	if !in.Type.Valid() {
		return invalidField("type", "must be paid_to_seller or received_from_buyer")
	}
	if in.Amount.IsNegative() {
		return invalidField("amount", "must not be negative")
	}
	return nil
}

// AddPayment validates the input, resolves the customer and appends the
// settlement. An empty date defaults to today.
func (s *Store) AddPayment(ctx context.Context, in PaymentInput) (models.Payment, error) {
	if err := in.validate(); err != nil {
		return models.Payment{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return models.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findCustomerLocked(in.CustomerID); !ok {
		return models.Payment{}, invalidField("customerId", "customer does not exist")
	}

	payment := models.Payment{
		ID:         s.ids.Next(KindPayment),
		CustomerID: in.CustomerID,
		Type:       in.Type,
		Amount:     in.Amount,
		Date:       date,
	}
	s.payments = append(s.payments, payment)

	if err := s.repo.SavePayments(ctx, s.payments); err != nil {
		return models.Payment{}, err
	}

	s.logger.Info("payment added",
		zap.String("id", payment.ID),
		zap.String("customer_id", payment.CustomerID),
		zap.String("type", string(payment.Type)))
	return payment, nil
}

// UpdatePayment replaces the editable fields of an existing payment.
func (s *Store) UpdatePayment(ctx context.Context, id string, in PaymentInput) (models.Payment, error) {
	if err := in.validate(); err != nil {
		return models.Payment{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return models.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findCustomerLocked(in.CustomerID); !ok {
		return models.Payment{}, invalidField("customerId", "customer does not exist")
	}

	for i, p := range s.payments {
		if p.ID != id {
			continue
		}
		p.CustomerID = in.CustomerID
		p.Type = in.Type
		p.Amount = in.Amount
		p.Date = date
		s.payments[i] = p

		if err := s.repo.SavePayments(ctx, s.payments); err != nil {
			return models.Payment{}, err
		}

		s.logger.Info("payment updated", zap.String("id", id))
		return p, nil
	}

	return models.Payment{}, ErrNotFound
}

// DeletePayment removes a single payment.
func (s *Store) DeletePayment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := s.payments[:0:0]
	found := false
	for _, p := range s.payments {
		if p.ID == id {
			found = true
			continue
		}
		payments = append(payments, p)
	}
	if !found {
		return ErrNotFound
	}

	s.payments = payments
	if err := s.repo.SavePayments(ctx, s.payments); err != nil {
		return err
	}

	s.logger.Info("payment deleted", zap.String("id", id))
	return nil
}
