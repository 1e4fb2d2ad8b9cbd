package repository

import "context"

// TransactionManager runs fn in one database transaction and commits when fn
// returns nil. Owner registration and current-location swaps depend on it.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
// Devices are written outside transactions and have no entry here.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewTruckRepository() TruckRepository
	NewLocationRepository() LocationRepository
	NewMenuItemRepository() MenuItemRepository
	NewFavoriteRepository() FavoriteRepository
}
