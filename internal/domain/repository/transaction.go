package repository

import "context"

// TransactionManager runs a unit of work against users and meal plans atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn may be
	// invoked more than once when the database aborts the transaction because
	// of a concurrent writer, so it must not have side effects outside the
	// repositories it is handed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	MealPlanRepo() MealPlanRepository
}
