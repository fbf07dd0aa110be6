package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e por *sql.Tx, para que os repositórios
// executem tanto fora quanto dentro da transação de uma sincronização.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
