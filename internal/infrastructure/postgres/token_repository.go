package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
)

// TokenRepository stores auth tokens with a unique (email, purpose) index.
// The upsert keeps the one-live-token-per-purpose invariant: re-issuing
// overwrites the previous value, which can then never be redeemed.
type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

const tokenCols = "id, email, purpose, token, updated_at"

func scanToken(row pgx.Row) (*entity.AuthToken, error) {
	t := &entity.AuthToken{}
	if err := row.Scan(&t.ID, &t.Email, &t.Purpose, &t.Token, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TokenRepository) FindByEmail(ctx context.Context, email string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	return scanToken(r.pool.QueryRow(ctx,
		"SELECT "+tokenCols+" FROM auth_tokens WHERE email = $1 AND purpose = $2",
		email, purpose))
}

func (r *TokenRepository) FindByToken(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	return scanToken(r.pool.QueryRow(ctx,
		"SELECT "+tokenCols+" FROM auth_tokens WHERE token = $1 AND purpose = $2",
		token, purpose))
}

func (r *TokenRepository) Upsert(ctx context.Context, email string, purpose entity.TokenPurpose, token string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO auth_tokens (email, purpose, token, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (email, purpose)
		DO UPDATE SET token = EXCLUDED.token, updated_at = now()
	`, email, purpose, token)
	return err
}

func (r *TokenRepository) Delete(ctx context.Context, token string, purpose entity.TokenPurpose) error {
	res, err := r.pool.Exec(ctx,
		"DELETE FROM auth_tokens WHERE token = $1 AND purpose = $2", token, purpose)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Consume is the atomic find-and-delete used for redemption: a concurrent
// redeem of the same value sees no row and fails, so a password can never
// be changed twice off one token.
func (r *TokenRepository) Consume(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	return scanToken(r.pool.QueryRow(ctx, `
		DELETE FROM auth_tokens WHERE token = $1 AND purpose = $2
		RETURNING `+tokenCols, token, purpose))
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
