package shared

import "context"

// UnitOfWork scopes a sequence of repository operations to a single
// store transaction: commit on normal return, rollback on error. The
// transaction handle travels in the context passed to fn.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
