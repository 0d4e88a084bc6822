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

type MergedLLMRepository struct {
	pool *pgxpool.Pool
}

func NewMergedLLMRepository(pool *pgxpool.Pool) *MergedLLMRepository {
	return &MergedLLMRepository{pool: pool}
}

const mergedLLMCols = "id, llm1_id, llm2_id, created_at, updated_at"

// merged models carry only references, nothing text-searchable
var mergedLLMDropdown = map[string]bool{}

func (r *MergedLLMRepository) List(ctx context.Context, skip, take int, search string) ([]entity.MergedLLM, int, error) {
	rows, total, err := listRows(ctx, r.pool, "merged_llms", mergedLLMCols,
		nil, "", skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.MergedLLM
	for rows.Next() {
		m := entity.MergedLLM{}
		if err := rows.Scan(&m.ID, &m.LLM1ID, &m.LLM2ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r *MergedLLMRepository) GetByID(ctx context.Context, id string) (*entity.MergedLLM, error) {
	m := &entity.MergedLLM{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+mergedLLMCols+" FROM merged_llms WHERE id = $1", id).
		Scan(&m.ID, &m.LLM1ID, &m.LLM2ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MergedLLMRepository) Create(ctx context.Context, m *entity.MergedLLM) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO merged_llms (llm1_id, llm2_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, m.LLM1ID, m.LLM2ID).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MergedLLMRepository) Update(ctx context.Context, m *entity.MergedLLM) error {
	m.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE merged_llms SET llm1_id = $1, llm2_id = $2, updated_at = $3 WHERE id = $4
	`, m.LLM1ID, m.LLM2ID, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MergedLLMRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM merged_llms WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MergedLLMRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "merged_llms", mergedLLMDropdown, fields, keyword)
}

var _ repository.MergedLLMRepository = (*MergedLLMRepository)(nil)
