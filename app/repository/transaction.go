package repository

import (
	"context"

	"github.com/transactify/transactify/app/entity"
)

// TransactionStore persists one record per successful charge. Records are
// append-only; no backend ever updates or deletes them.
type TransactionStore interface {
	Record(ctx context.Context, record *entity.TransactionRecord) error
}
