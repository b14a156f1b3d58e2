package postgres

import (
	"context"
	"database/sql"
)

// Querier is the read access the offer repository needs. *sql.DB, *sql.Tx
// and *sql.Conn all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Querier = (*sql.Conn)(nil)
)
