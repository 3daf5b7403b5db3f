// Package trm binds sqlx transactions to a context so repositories can join
// a unit of work opened by the service layer.
package trm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type ctxTxKey struct{}

// ExtractTx returns the transaction bound to ctx, if any.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(ctxTxKey{}).(*sqlx.Tx)
	return tx
}

type Option func(*sql.TxOptions)

func WithIsolation(level sql.IsolationLevel) Option {
	return func(o *sql.TxOptions) { o.Isolation = level }
}

type txManager struct {
	db   *sqlx.DB
	opts sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

func (m *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := m.db.BeginTxx(ctx, &m.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return context.WithValue(ctx, ctxTxKey{}, tx), tx, nil
}

// Do runs callback in a transaction. A callback already running inside a
// transaction joins it instead of opening a new one. The transaction is
// rolled back when callback fails or panics.
func (m *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	txCtx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err = callback(txCtx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	committed = true
	return nil
}
