package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Use cases receive one inside TransactionManager.Execute.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
}

// TransactionManager runs application logic within a single database
// transaction. The callback's error rolls the transaction back; nil commits.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
