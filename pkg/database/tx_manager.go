package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager abstracts the transaction boundary so services stay testable
// without a live pool.
type TxManager interface {
	WithTx(ctx context.Context, fn TxFunc) error
}

type poolTxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &poolTxManager{pool: pool}
}

func (m *poolTxManager) WithTx(ctx context.Context, fn TxFunc) error {
	return WithTransaction(ctx, m.pool, fn)
}
