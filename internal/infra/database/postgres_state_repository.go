// internal/infra/database/postgres_state_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_notification_bot/internal/domain/homework"
)

// ErrStateNotFound is returned before the first state record is saved.
var ErrStateNotFound = fmt.Errorf("monitor state not found")

// PostgresStateRepository persists the review state so that the poll
// cursor and duplicate suppression survive restarts.
//
// Expected table:
//
//	CREATE TABLE IF NOT EXISTS monitor_state (
//	    chat_id     BIGINT PRIMARY KEY,
//	    cursor_ts   BIGINT NOT NULL,
//	    last_status VARCHAR(32) NOT NULL DEFAULT '',
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStateRepository struct {
	db     *sql.DB
	chatID int64
}

func NewPostgresStateRepository(db *sql.DB, chatID int64) *PostgresStateRepository {
	return &PostgresStateRepository{db: db, chatID: chatID}
}

func (r *PostgresStateRepository) Get(ctx context.Context) (*homework.ReviewState, error) {
	query := `SELECT cursor_ts, last_status FROM monitor_state WHERE chat_id = $1`
	state := homework.ReviewState{}
	err := r.db.QueryRowContext(ctx, query, r.chatID).Scan(&state.Cursor, &state.LastNotifiedStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("error getting monitor state: %w", err)
	}
	return &state, nil
}

func (r *PostgresStateRepository) Save(ctx context.Context, state *homework.ReviewState) error {
	query := `INSERT INTO monitor_state (chat_id, cursor_ts, last_status, updated_at)
               VALUES ($1, $2, $3, NOW())
               ON CONFLICT (chat_id) DO UPDATE
               SET cursor_ts = EXCLUDED.cursor_ts, last_status = EXCLUDED.last_status, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, r.chatID, state.Cursor, state.LastNotifiedStatus); err != nil {
		return fmt.Errorf("error saving monitor state: %w", err)
	}
	return nil
}
