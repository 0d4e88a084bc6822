package repository

import (
	"context"
	"errors"

	"github.com/modelforge/modelforge/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines credential-store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, email, hash string) error
	SetVerified(ctx context.Context, email string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, skip, take int, search string) ([]entity.User, int, error)
}
