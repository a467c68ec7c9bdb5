package category

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists categories in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const categoryColumns = "id, name, project_id, created_at, updated_at"

func (s *PostgresStore) Create(ctx context.Context, c *Category) (*Category, error) {
	query := `
		INSERT INTO categories (name, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns
	row := s.db.QueryRowContext(ctx, query, c.Name, c.ProjectID, c.CreatedAt, c.UpdatedAt)

	var stored Category
	if err := row.Scan(&stored.ID, &stored.Name, &stored.ProjectID, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &stored, nil
}

func (s *PostgresStore) ListByProject(ctx context.Context, projectID int64) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE project_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ProjectID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}
