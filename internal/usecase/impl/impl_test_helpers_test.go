package impl

import (
	"context"
	"io"
	"log/slog"

	"openspace/internal/domain/repository"
	mockRepo "openspace/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction routes txManager.Execute calls through the given factory,
// so repository expectations registered on the factory's mocks apply inside
// the transaction callback.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
