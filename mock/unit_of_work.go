package mock

import "context"

// UnitOfWork runs the function directly without a transaction, for
// tests against in-memory repositories.
type UnitOfWork struct{}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
