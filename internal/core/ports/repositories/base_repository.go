package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside one database transaction.
// Repositories called with the ctx passed to fn take part in that transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
