// Package jsonfile persists the ledger as three independently keyed JSON
// array files, the desktop analog of the original browser-local storage. The
// core services never touch the filesystem themselves; they go through the
// Repository interface.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// ErrCorruptState marks persisted data that no longer parses. Loaders are
// expected to reset the affected collection to empty and warn rather than
// crash.
var ErrCorruptState = errors.New("corrupt persisted state")

const (
	customersFile    = "customers.json"
	transactionsFile = "transactions.json"
	paymentsFile     = "payments.json"

	backupTimeLayout = "20060102-150405"
)

// Repository defines the persistence operations the ledger store relies on.
type Repository interface {
	LoadCustomers(ctx context.Context) ([]models.Customer, error)
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	LoadPayments(ctx context.Context) ([]models.Payment, error)
	SaveCustomers(ctx context.Context, customers []models.Customer) error
	SaveTransactions(ctx context.Context, transactions []models.Transaction) error
	SavePayments(ctx context.Context, payments []models.Payment) error
	WriteBackup(ctx context.Context, backup models.Backup) (string, error)
}

// FileRepository implements Repository on top of a data directory.
type FileRepository struct {
	dataDir   string
	backupDir string
	logger    *zap.Logger
}

// NewFileRepository prepares the data and backup directories and returns the
// repository.
func NewFileRepository(dataDir, backupDir string, logger *zap.Logger) (*FileRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir %s: %w", backupDir, err)
	}

	return &FileRepository{dataDir: dataDir, backupDir: backupDir, logger: logger}, nil
}

// LoadCustomers reads the customer collection. A missing file yields an empty
// collection.
func (r *FileRepository) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	return loadCollection[models.Customer](r, customersFile)
}

// LoadTransactions reads the transaction collection.
func (r *FileRepository) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	return loadCollection[models.Transaction](r, transactionsFile)
}

// LoadPayments reads the payment collection.
func (r *FileRepository) LoadPayments(ctx context.Context) ([]models.Payment, error) {
	return loadCollection[models.Payment](r, paymentsFile)
}

// SaveCustomers writes the customer collection.
func (r *FileRepository) SaveCustomers(ctx context.Context, customers []models.Customer) error {
	return saveCollection(r, customersFile, customers)
}

// SaveTransactions writes the transaction collection.
func (r *FileRepository) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	return saveCollection(r, transactionsFile, transactions)
}

// SavePayments writes the payment collection.
func (r *FileRepository) SavePayments(ctx context.Context, payments []models.Payment) error {
	return saveCollection(r, paymentsFile, payments)
}

// WriteBackup writes a timestamped snapshot of all three collections into the
// backup directory and returns the file path.
func (r *FileRepository) WriteBackup(ctx context.Context, backup models.Backup) (string, error) {
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	name := fmt.Sprintf("ledger-backup-%s.json", time.Now().Format(backupTimeLayout))
	path := filepath.Join(r.backupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup %s: %w", path, err)
	}

	r.logger.Info("backup written", zap.String("path", path))
	return path, nil
}

func loadCollection[T any](r *FileRepository, name string) ([]T, error) {
	path := filepath.Join(r.dataDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %w", path, ErrCorruptState, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](r *FileRepository, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(r.dataDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
