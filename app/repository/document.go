package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/transactify/transactify/app/entity"
)

const createTransactionsTableSQL = `CREATE TABLE IF NOT EXISTS transactions (id INTEGER PRIMARY KEY AUTOINCREMENT, product TEXT NOT NULL, ref TEXT, document TEXT NOT NULL, created_at DATETIME DEFAULT CURRENT_TIMESTAMP)`

// DocumentStore inserts one schemaless JSON document per record into an
// embedded sqlite collection. The connection is serialized with a mutex
// since sqlite.Conn is not safe for concurrent use.
type DocumentStore struct {
	mu   sync.Mutex
	conn *sqlite.Conn
}

// OpenDocumentStore opens (creating when missing) the database at path and
// ensures the transactions table exists.
func OpenDocumentStore(path string) (*DocumentStore, error) {
	if path == "" {
		return nil, fmt.Errorf("document store path cannot be empty")
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	return NewDocumentStore(conn)
}

// NewDocumentStore wraps an existing connection (used by tests with an
// in-memory database).
func NewDocumentStore(conn *sqlite.Conn) (*DocumentStore, error) {
	store := &DocumentStore{conn: conn}
	if err := sqlitex.ExecuteTransient(conn, createTransactionsTableSQL, nil); err != nil {
		return nil, fmt.Errorf("create transactions table: %w", err)
	}
	return store, nil
}

func (s *DocumentStore) Record(_ context.Context, record *entity.TransactionRecord) error {
	document, err := json.Marshal(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = sqlitex.ExecuteTransient(s.conn,
		`INSERT INTO transactions (product, ref, document) VALUES (?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []interface{}{record.Product, record.Ref, string(document)},
		})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Count reports how many records the collection holds.
func (s *DocumentStore) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	err := sqlitex.ExecuteTransient(s.conn, `SELECT COUNT(*) FROM transactions`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt64(0)
			return nil
		},
	})
	return count, err
}

func (s *DocumentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}
