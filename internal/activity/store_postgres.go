package activity

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists activity events in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_events (action, occurred_at, user_id, subject, device, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.Action, event.Timestamp, event.UserID, event.Subject, event.Device, event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, occurred_at, user_id, subject, device, request_id
		FROM activity_events
		WHERE user_id = $1
		ORDER BY occurred_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Action, &e.Timestamp, &e.UserID, &e.Subject, &e.Device, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	return out, nil
}
