package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user. An unrecognised or empty role defaults
	// to staff.
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
