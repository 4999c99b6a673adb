package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

// AuthRepository defines the interface for console user persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AuthService authenticates console operators.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token until its natural expiry.
	Logout(ctx context.Context, token string) error
}
