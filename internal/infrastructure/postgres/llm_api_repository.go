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

type LLMAPIRepository struct {
	pool *pgxpool.Pool
}

func NewLLMAPIRepository(pool *pgxpool.Pool) *LLMAPIRepository {
	return &LLMAPIRepository{pool: pool}
}

const llmAPICols = "id, name, endpoint, user_id, created_at, updated_at"

var llmAPIDropdown = map[string]bool{"name": true, "endpoint": true}

func (r *LLMAPIRepository) List(ctx context.Context, skip, take int, search string) ([]entity.LLMAPI, int, error) {
	rows, total, err := listRows(ctx, r.pool, "llm_apis", llmAPICols,
		[]string{"name", "endpoint"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.LLMAPI
	for rows.Next() {
		a := entity.LLMAPI{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Endpoint, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *LLMAPIRepository) GetByID(ctx context.Context, id string) (*entity.LLMAPI, error) {
	a := &entity.LLMAPI{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+llmAPICols+" FROM llm_apis WHERE id = $1", id).
		Scan(&a.ID, &a.Name, &a.Endpoint, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *LLMAPIRepository) Create(ctx context.Context, a *entity.LLMAPI) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO llm_apis (name, endpoint, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Endpoint, a.UserID).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *LLMAPIRepository) Update(ctx context.Context, a *entity.LLMAPI) error {
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE llm_apis SET name = $1, endpoint = $2, updated_at = $3 WHERE id = $4
	`, a.Name, a.Endpoint, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LLMAPIRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM llm_apis WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LLMAPIRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "llm_apis", llmAPIDropdown, fields, keyword)
}

var _ repository.LLMAPIRepository = (*LLMAPIRepository)(nil)
