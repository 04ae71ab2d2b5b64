package entity

import "encoding/json"

// TransactionRecord is the persisted outcome of one successful charge: the
// raw gateway response plus the product and caller reference it settled.
// Records are append-only and never mutated after being written.
type TransactionRecord struct {
	Transaction json.RawMessage `json:"transaction"`
	Product     string          `json:"product"`
	Ref         string          `json:"ref,omitempty"`
}
