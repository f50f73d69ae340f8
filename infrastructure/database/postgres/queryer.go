package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
