package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modelforge/modelforge/internal/domain/repository"
)

const dropdownLimit = 25

// searchWhere builds an ILIKE clause over the given columns bound to a
// single pattern argument, e.g. "WHERE name ILIKE $1 OR endpoint ILIKE $1".
// Returns the empty string when there is nothing to search.
func searchWhere(cols []string, search string) (clause string, pattern string) {
	if strings.TrimSpace(search) == "" || len(cols) == 0 {
		return "", ""
	}
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c+" ILIKE $1")
	}
	return "WHERE " + strings.Join(parts, " OR "), "%" + search + "%"
}

// dropdownColumns filters the requested projection against the table's
// whitelist. id is always selected first and never searchable; anything
// not whitelisted is dropped so request fields never reach SQL.
func dropdownColumns(allowed map[string]bool, fields []string) (cols, searchable []string) {
	cols = make([]string, 0, len(fields)+1)
	cols = append(cols, "id")
	searchable = make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "id" || !allowed[f] {
			continue
		}
		cols = append(cols, f)
		searchable = append(searchable, f)
	}
	return cols, searchable
}

// dropdown runs the shared dropdown projection: whitelisted columns only,
// optional keyword match across the requested columns, capped result set.
func dropdown(ctx context.Context, pool *pgxpool.Pool, table string, allowed map[string]bool, fields []string, keyword string) ([]repository.DropdownRow, error) {
	cols, searchable := dropdownColumns(allowed, fields)

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	var args []any
	if clause, pattern := searchWhere(searchable, keyword); clause != "" {
		q += " " + clause
		args = append(args, pattern)
	}
	q += fmt.Sprintf(" LIMIT %d", dropdownLimit)

	rows, err := pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.DropdownRow
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(repository.DropdownRow, len(cols))
		for i, fd := range rows.FieldDescriptions() {
			row[string(fd.Name)] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// listRows runs the shared pagination query (filter count + ordered page)
// and hands the page rows back to the caller for scanning.
func listRows(ctx context.Context, pool *pgxpool.Pool, table, cols string, searchCols []string, search string, skip, take int) (pgx.Rows, int, error) {
	clause, pattern := searchWhere(searchCols, search)
	var args []any
	if clause != "" {
		args = append(args, pattern)
	}
	total, err := countRows(ctx, pool, table, clause, args...)
	if err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d",
		cols, table, clause, len(args)+1, len(args)+2)
	args = append(args, skip, take)
	rows, err := pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// countRows returns the total matching a list query's filter.
func countRows(ctx context.Context, pool *pgxpool.Pool, table, clause string, args ...any) (int, error) {
	var total int
	q := "SELECT COUNT(*) FROM " + table
	if clause != "" {
		q += " " + clause
	}
	if err := pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
