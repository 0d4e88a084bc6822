package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
)

type OpenAIKeyRepository struct {
	pool *pgxpool.Pool
}

func NewOpenAIKeyRepository(pool *pgxpool.Pool) *OpenAIKeyRepository {
	return &OpenAIKeyRepository{pool: pool}
}

const openAIKeyCols = "id, api_key, user_id, created_at, updated_at"

var openAIKeyDropdown = map[string]bool{"api_key": true}

func (r *OpenAIKeyRepository) List(ctx context.Context, skip, take int, search string) ([]entity.OpenAIKey, int, error) {
	rows, total, err := listRows(ctx, r.pool, "open_ai_keys", openAIKeyCols,
		[]string{"api_key"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.OpenAIKey
	for rows.Next() {
		k := entity.OpenAIKey{}
		if err := rows.Scan(&k.ID, &k.APIKey, &k.UserID, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, k)
	}
	return out, total, rows.Err()
}

func (r *OpenAIKeyRepository) GetByID(ctx context.Context, id string) (*entity.OpenAIKey, error) {
	k := &entity.OpenAIKey{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+openAIKeyCols+" FROM open_ai_keys WHERE id = $1", id).
		Scan(&k.ID, &k.APIKey, &k.UserID, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (r *OpenAIKeyRepository) Create(ctx context.Context, k *entity.OpenAIKey) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO open_ai_keys (api_key, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, k.APIKey, k.UserID).Scan(&k.ID, &k.CreatedAt, &k.UpdatedAt)
}

func (r *OpenAIKeyRepository) Update(ctx context.Context, k *entity.OpenAIKey) error {
	k.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE open_ai_keys SET api_key = $1, updated_at = $2 WHERE id = $3
	`, k.APIKey, k.UpdatedAt, k.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OpenAIKeyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM open_ai_keys WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OpenAIKeyRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "open_ai_keys", openAIKeyDropdown, fields, keyword)
}

var _ repository.OpenAIKeyRepository = (*OpenAIKeyRepository)(nil)
