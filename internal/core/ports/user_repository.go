package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user. Implementations must translate a
	// unique-constraint violation on username into domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
