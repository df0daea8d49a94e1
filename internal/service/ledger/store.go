// Package ledger owns the three in-memory collections and every mutation on
// them. All writes funnel through named store operations that validate,
// mutate under one lock and persist through the repository; views recompute
// from a snapshot on every read, so there is never partial state to observe.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/repository/jsonfile"
)

const dateLayout = "2006-01-02"

// Store holds the ledger collections together with the ID allocator.
type Store struct {
	mu     sync.RWMutex
	repo   jsonfile.Repository
	logger *zap.Logger

	customers    []models.Customer
	transactions []models.Transaction
	payments     []models.Payment
	ids          *Allocator
}

// NewStore wires an empty store around the repository.
func NewStore(repo jsonfile.Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:         repo,
		logger:       logger,
		customers:    []models.Customer{},
		transactions: []models.Transaction{},
		payments:     []models.Payment{},
		ids:          NewAllocator(),
	}
}

// Load reads all three collections from the repository and rebuilds the ID
// counters. A collection that fails to parse is reset to empty with a warning
// instead of aborting startup; any other repository failure is fatal to the
// load.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		if !errors.Is(err, jsonfile.ErrCorruptState) {
			return err
		}
		s.logger.Warn("customer data corrupt, starting empty", zap.Error(err))
		customers = []models.Customer{}
	}

	transactions, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		if !errors.Is(err, jsonfile.ErrCorruptState) {
			return err
		}
		s.logger.Warn("transaction data corrupt, starting empty", zap.Error(err))
		transactions = []models.Transaction{}
	}

	payments, err := s.repo.LoadPayments(ctx)
	if err != nil {
		if !errors.Is(err, jsonfile.ErrCorruptState) {
			return err
		}
		s.logger.Warn("payment data corrupt, starting empty", zap.Error(err))
		payments = []models.Payment{}
	}

	s.customers = customers
	s.transactions = transactions
	s.payments = payments
	s.ids.Reinitialize(s.customers, s.transactions, s.payments)

	s.logger.Info("ledger loaded",
		zap.Int("customers", len(s.customers)),
		zap.Int("transactions", len(s.transactions)),
		zap.Int("payments", len(s.payments)))
	return nil
}

// Snapshot returns copies of all three collections for read-only pipelines.
func (s *Store) Snapshot() models.Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Backup {
	customers := make([]models.Customer, len(s.customers))
	copy(customers, s.customers)
	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	return models.Backup{Customers: customers, Transactions: transactions, Payments: payments}
}

// findCustomerLocked resolves a customer by ID under the caller's lock.
func (s *Store) findCustomerLocked(id string) (models.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// normalizeDate defaults an empty date to today and validates the layout.
func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", invalidField("date", "must be a YYYY-MM-DD date")
	}
	return date, nil
}
