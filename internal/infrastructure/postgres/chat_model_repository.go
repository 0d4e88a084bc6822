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

type ChatModelRepository struct {
	pool *pgxpool.Pool
}

func NewChatModelRepository(pool *pgxpool.Pool) *ChatModelRepository {
	return &ChatModelRepository{pool: pool}
}

const chatModelCols = "id, model_name, model_version, api_key_id, created_at, updated_at"

var chatModelDropdown = map[string]bool{"model_name": true, "model_version": true}

func (r *ChatModelRepository) List(ctx context.Context, skip, take int, search string) ([]entity.ChatModel, int, error) {
	rows, total, err := listRows(ctx, r.pool, "chat_models", chatModelCols,
		[]string{"model_name", "model_version"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.ChatModel
	for rows.Next() {
		m := entity.ChatModel{}
		if err := rows.Scan(&m.ID, &m.ModelName, &m.ModelVersion, &m.APIKeyID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r *ChatModelRepository) GetByID(ctx context.Context, id string) (*entity.ChatModel, error) {
	m := &entity.ChatModel{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+chatModelCols+" FROM chat_models WHERE id = $1", id).
		Scan(&m.ID, &m.ModelName, &m.ModelVersion, &m.APIKeyID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *ChatModelRepository) Create(ctx context.Context, m *entity.ChatModel) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO chat_models (model_name, model_version, api_key_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, m.ModelName, m.ModelVersion, m.APIKeyID).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *ChatModelRepository) Update(ctx context.Context, m *entity.ChatModel) error {
	m.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE chat_models SET model_name = $1, model_version = $2, api_key_id = $3, updated_at = $4 WHERE id = $5
	`, m.ModelName, m.ModelVersion, m.APIKeyID, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChatModelRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM chat_models WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChatModelRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "chat_models", chatModelDropdown, fields, keyword)
}

var _ repository.ChatModelRepository = (*ChatModelRepository)(nil)
