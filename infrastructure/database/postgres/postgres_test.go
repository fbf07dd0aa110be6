package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver mínimo para observar o destino do erro quando fn e o rollback
// falham na mesma transação.
type stubDriver struct{ rollbackErr error }

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{rollbackErr: d.rollbackErr}, nil
}

type stubConn struct{ rollbackErr error }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{rollbackErr: c.rollbackErr}, nil
}

type stubTx struct{ rollbackErr error }

func (t *stubTx) Commit() error   { return nil }
func (t *stubTx) Rollback() error { return t.rollbackErr }

func init() {
	sql.Register("tx-stub", &stubDriver{})
	sql.Register("tx-stub-rollback-err", &stubDriver{rollbackErr: errors.New("conexão perdida no rollback")})
}

func openConn(t *testing.T, driverName string) *Connection {
	db, err := sql.Open(driverName, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Connection{DB: db}
}

func TestRunInTransaction_ComitaQuandoFnRetornaNil(t *testing.T) {
	conn := openConn(t, "tx-stub")

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		return nil
	})

	assert.NoError(t, err)
}

func TestRunInTransaction_FalhaDeFnDevolveACausa(t *testing.T) {
	conn := openConn(t, "tx-stub")
	cause := errors.New("gravação recusada")

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		return cause
	})

	assert.Equal(t, cause, err)
}

func TestRunInTransaction_CausaOriginalSobreviveAFalhaDoRollback(t *testing.T) {
	conn := openConn(t, "tx-stub-rollback-err")
	cause := errors.New("gravação recusada")

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		return cause
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "rollback falhou")
}
