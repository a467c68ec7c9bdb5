package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PostgresStore persists tasks in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const taskColumns = "id, title, description, status, priority, due_date, completed_at, is_recurring, owner_id, project_id, category_id, created_at, updated_at"

func (s *PostgresStore) Create(ctx context.Context, t *Task) (*Task, error) {
	query := `
		INSERT INTO tasks (title, description, status, priority, due_date, completed_at, is_recurring, owner_id, project_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + taskColumns
	row := s.db.QueryRowContext(ctx, query,
		t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CompletedAt,
		t.IsRecurring, t.OwnerID, t.ProjectID, t.CategoryID, t.CreatedAt, t.UpdatedAt,
	)
	stored, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return stored, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID int64, projectID *int64) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1`
	args := []any{ownerID}
	if projectID != nil {
		query += ` AND project_id = $2`
		args = append(args, *projectID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CompletedAt, &t.IsRecurring, &t.OwnerID, &t.ProjectID, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateByIDAndOwner(ctx context.Context, id, ownerID int64, u Update) (*Task, error) {
	sets := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if u.Status != nil {
		sets = append(sets, "status = "+arg(*u.Status))
	}
	if u.Priority != nil {
		sets = append(sets, "priority = "+arg(*u.Priority))
	}
	if u.SetCompletedAt {
		sets = append(sets, "completed_at = "+arg(u.CompletedAt))
	}
	sets = append(sets, "updated_at = "+arg(u.UpdatedAt))

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") +
		` WHERE id = ` + arg(id) + ` AND owner_id = ` + arg(ownerID) +
		` RETURNING ` + taskColumns

	stored, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return stored, nil
}

func scanTask(row *sql.Row) (*Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CompletedAt, &t.IsRecurring, &t.OwnerID, &t.ProjectID, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
