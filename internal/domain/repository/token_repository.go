package repository

import (
	"context"

	"github.com/modelforge/modelforge/internal/domain/entity"
)

// TokenRepository persists single-purpose auth tokens keyed by
// (email, purpose). Upsert replaces any prior token for the pair, so only
// the most recently issued value stays redeemable.
type TokenRepository interface {
	FindByEmail(ctx context.Context, email string, purpose entity.TokenPurpose) (*entity.AuthToken, error)
	FindByToken(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error)
	Upsert(ctx context.Context, email string, purpose entity.TokenPurpose, token string) error
	Delete(ctx context.Context, token string, purpose entity.TokenPurpose) error
	// Consume deletes the token and returns the deleted row in one
	// statement. Concurrent redeemers race on the delete; exactly one wins.
	Consume(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error)
}
