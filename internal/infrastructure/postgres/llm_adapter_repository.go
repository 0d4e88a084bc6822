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

type LLMAdapterRepository struct {
	pool *pgxpool.Pool
}

func NewLLMAdapterRepository(pool *pgxpool.Pool) *LLMAdapterRepository {
	return &LLMAdapterRepository{pool: pool}
}

const llmAdapterCols = "id, name, model_type, created_at, updated_at"

var llmAdapterDropdown = map[string]bool{"name": true, "model_type": true}

func (r *LLMAdapterRepository) List(ctx context.Context, skip, take int, search string) ([]entity.LLMAdapter, int, error) {
	rows, total, err := listRows(ctx, r.pool, "llm_adapters", llmAdapterCols,
		[]string{"name", "model_type"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.LLMAdapter
	for rows.Next() {
		a := entity.LLMAdapter{}
		if err := rows.Scan(&a.ID, &a.Name, &a.ModelType, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *LLMAdapterRepository) GetByID(ctx context.Context, id string) (*entity.LLMAdapter, error) {
	a := &entity.LLMAdapter{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+llmAdapterCols+" FROM llm_adapters WHERE id = $1", id).
		Scan(&a.ID, &a.Name, &a.ModelType, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *LLMAdapterRepository) Create(ctx context.Context, a *entity.LLMAdapter) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO llm_adapters (name, model_type)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, a.Name, a.ModelType).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *LLMAdapterRepository) Update(ctx context.Context, a *entity.LLMAdapter) error {
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE llm_adapters SET name = $1, model_type = $2, updated_at = $3 WHERE id = $4
	`, a.Name, a.ModelType, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LLMAdapterRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM llm_adapters WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LLMAdapterRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "llm_adapters", llmAdapterDropdown, fields, keyword)
}

var _ repository.LLMAdapterRepository = (*LLMAdapterRepository)(nil)
