package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

type Transactor struct {
	conn PgConnection
}

func NewTransactor(conn PgConnection) *Transactor {
	return &Transactor{
		conn: conn,
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
// A ctx that already carries a transaction is reused, so calls nest.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := t.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

// executor picks the transaction carried by ctx, falling back to conn.
func executor(ctx context.Context, conn PgConnection) DBTX {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}
