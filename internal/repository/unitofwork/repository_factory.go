package unitofwork

import "context"

// RepositoryFactory hands out units of work. Services hold the factory,
// never a live transaction.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
