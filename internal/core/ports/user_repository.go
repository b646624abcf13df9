package ports

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/account"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByUsername retrieves a user by login name regardless of status.
	GetByUsername(ctx context.Context, username string) (*account.User, error)

	// GetByUsernameOrEmail retrieves a user matching either credential.
	// Used by signup to detect an existing registration.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*account.User, error)
}
