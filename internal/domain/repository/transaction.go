package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the transaction shares one
// database connection.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewCompanyRepository returns a CompanyRepository bound to the current transaction.
	NewCompanyRepository() CompanyRepository

	// NewJobRepository returns a JobRepository bound to the current transaction.
	NewJobRepository() JobRepository

	// NewTagRepository returns a TagRepository bound to the current transaction.
	NewTagRepository() TagRepository

	// NewRatingRepository returns a RatingRepository bound to the current transaction.
	NewRatingRepository() RatingRepository
}
