package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/dbctx"
)

// TxRunner is the unit-of-work boundary: a use case runs entirely inside one
// transaction so aggregate writes and their audit entries commit or fail
// together.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domain.NewError(domain.CodeInternal, "db.tx", "transaction runner has nil db", nil)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
