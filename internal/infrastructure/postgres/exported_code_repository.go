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

type ExportedCodeRepository struct {
	pool *pgxpool.Pool
}

func NewExportedCodeRepository(pool *pgxpool.Pool) *ExportedCodeRepository {
	return &ExportedCodeRepository{pool: pool}
}

const exportedCodeCols = "id, code, archive_url, user_id, created_at, updated_at"

var exportedCodeDropdown = map[string]bool{"code": true}

func (r *ExportedCodeRepository) List(ctx context.Context, skip, take int, search string) ([]entity.ExportedCode, int, error) {
	rows, total, err := listRows(ctx, r.pool, "exported_codes", exportedCodeCols,
		[]string{"code"}, search, skip, take)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.ExportedCode
	for rows.Next() {
		e := entity.ExportedCode{}
		if err := rows.Scan(&e.ID, &e.Code, &e.ArchiveURL, &e.UserID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *ExportedCodeRepository) GetByID(ctx context.Context, id string) (*entity.ExportedCode, error) {
	e := &entity.ExportedCode{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+exportedCodeCols+" FROM exported_codes WHERE id = $1", id).
		Scan(&e.ID, &e.Code, &e.ArchiveURL, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExportedCodeRepository) Create(ctx context.Context, e *entity.ExportedCode) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO exported_codes (code, archive_url, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, e.Code, e.ArchiveURL, e.UserID).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExportedCodeRepository) Update(ctx context.Context, e *entity.ExportedCode) error {
	e.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE exported_codes SET code = $1, archive_url = $2, updated_at = $3 WHERE id = $4
	`, e.Code, e.ArchiveURL, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ExportedCodeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, "DELETE FROM exported_codes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ExportedCodeRepository) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return dropdown(ctx, r.pool, "exported_codes", exportedCodeDropdown, fields, keyword)
}

var _ repository.ExportedCodeRepository = (*ExportedCodeRepository)(nil)
