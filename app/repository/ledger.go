package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/transactify/transactify/app/entity"
)

// LedgerStore appends records to a JSON array file. Each append reads the
// whole array, appends, and rewrites the whole file; a crash mid-write can
// corrupt the file. There is no locking, so concurrent appenders can lose
// records.
type LedgerStore struct {
	path string
}

func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

func (s *LedgerStore) Record(_ context.Context, record *entity.TransactionRecord) error {
	transactions, err := s.readAll()
	if err != nil {
		return err
	}

	transactions = append(transactions, record)
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// readAll loads the existing ledger. A missing file is an empty ledger;
// a file that exists but does not parse is a hard error, not data to
// overwrite.
func (s *LedgerStore) readAll() ([]*entity.TransactionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.TransactionRecord{}, nil
		}
		return nil, err
	}

	var transactions []*entity.TransactionRecord
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("parse transaction ledger %s: %w", s.path, err)
	}
	return transactions, nil
}
