package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// ParseBackup decodes an import payload. All three top-level collections must
// be present; anything else aborts with ErrImportFormat before any merge.
func ParseBackup(data []byte) (models.Backup, error) {
	var raw struct {
		Customers    *[]models.Customer    `json:"customers"`
		Transactions *[]models.Transaction `json:"transactions"`
		Payments     *[]models.Payment     `json:"payments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrImportFormat, err)
	}
	if raw.Customers == nil || raw.Transactions == nil || raw.Payments == nil {
		return models.Backup{}, fmt.Errorf("%w: missing customers, transactions or payments", ErrImportFormat)
	}
	return models.Backup{
		Customers:    *raw.Customers,
		Transactions: *raw.Transactions,
		Payments:     *raw.Payments,
	}, nil
}

// Export returns a copy of all three collections.
func (s *Store) Export() models.Backup {
	return s.Snapshot()
}

// ImportBackup merges an imported dataset into the store: records whose ID
// already exists overwrite the existing record in place, new IDs append. The
// allocator reinitializes afterwards so the next allocation continues past
// the merged data.
func (s *Store) ImportBackup(ctx context.Context, backup models.Backup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, imported := range backup.Customers {
		merged := false
		for i, c := range s.customers {
			if c.ID == imported.ID {
				s.customers[i] = imported
				merged = true
				break
			}
		}
		if !merged {
			s.customers = append(s.customers, imported)
		}
	}

	for _, imported := range backup.Transactions {
		merged := false
		for i, t := range s.transactions {
			if t.ID == imported.ID {
				s.transactions[i] = imported
				merged = true
				break
			}
		}
		if !merged {
			s.transactions = append(s.transactions, imported)
		}
	}

	for _, imported := range backup.Payments {
		merged := false
		for i, p := range s.payments {
			if p.ID == imported.ID {
				s.payments[i] = imported
				merged = true
				break
			}
		}
		if !merged {
			s.payments = append(s.payments, imported)
		}
	}

	s.ids.Reinitialize(s.customers, s.transactions, s.payments)

	if err := s.repo.SaveCustomers(ctx, s.customers); err != nil {
		return err
	}
	if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
		return err
	}
	if err := s.repo.SavePayments(ctx, s.payments); err != nil {
		return err
	}

	s.logger.Info("import merged",
		zap.Int("customers", len(backup.Customers)),
		zap.Int("transactions", len(backup.Transactions)),
		zap.Int("payments", len(backup.Payments)))
	return nil
}

// DeleteAll clears every collection and resets the ID counters.
func (s *Store) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = []models.Customer{}
	s.transactions = []models.Transaction{}
	s.payments = []models.Payment{}
	s.ids.Reset()

	if err := s.repo.SaveCustomers(ctx, s.customers); err != nil {
		return err
	}
	if err := s.repo.SaveTransactions(ctx, s.transactions); err != nil {
		return err
	}
	if err := s.repo.SavePayments(ctx, s.payments); err != nil {
		return err
	}

	s.logger.Info("all ledger data deleted")
	return nil
}
