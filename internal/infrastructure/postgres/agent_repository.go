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

type AutonomousAgentRepository struct {
	pool *pgxpool.Pool
}

func NewAutonomousAgentRepository(pool *pgxpool.Pool) *AutonomousAgentRepository {
	return &AutonomousAgentRepository{pool: pool}
}

const agentCols = "id, name, llm_id, user_id, created_at, updated_at"

var agentDropdown = map[string]bool{"name": true}

func (r *AutonomousAgentRepository) List(ctx context.Context, skip, take int, search string) ([]entity.AutonomousAgent, int, error) {
	rows, total, err := listRows(ctx, r.pool, "autonomous_agents", agentCols,
		[]string{"name"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.AutonomousAgent
	for rows.Next() {
		a := entity.AutonomousAgent{}
		if err := rows.Scan(&a.ID, &a.Name, &a.LLMID, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *AutonomousAgentRepository) GetByID(ctx context.Context, id string) (*entity.AutonomousAgent, error) {
	a := &entity.AutonomousAgent{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+agentCols+" FROM autonomous_agents WHERE id = $1", id).
		Scan(&a.ID, &a.Name, &a.LLMID, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AutonomousAgentRepository) Create(ctx context.Context, a *entity.AutonomousAgent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO autonomous_agents (name, llm_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.Name, a.LLMID, a.UserID).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AutonomousAgentRepository) Update(ctx context.Context, a *entity.AutonomousAgent) error {
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE autonomous_agents SET name = $1, llm_id = $2, updated_at = $3 WHERE id = $4
	`, a.Name, a.LLMID, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AutonomousAgentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM autonomous_agents WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AutonomousAgentRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "autonomous_agents", agentDropdown, fields, keyword)
}

var _ repository.AutonomousAgentRepository = (*AutonomousAgentRepository)(nil)
