package repositories

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// UnitOfWork groups repository mutations into one atomic unit: every write
// issued through the context passed to fn commits together, or the whole
// unit rolls back. Each settlement protocol runs inside exactly one unit.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// GormUnitOfWork is a GORM-transaction-backed UnitOfWork.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do runs fn inside a database transaction. The transactional handle is
// carried through the context so repositories pick it up transparently;
// returning an error from fn rolls everything back.
func (u *GormUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFromContext returns the transaction handle when the call runs inside a
// unit of work, otherwise the repository's own connection.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
