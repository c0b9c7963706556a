// internal/domain/homework/state.go
package homework

import "context"

// ReviewState is the monitor's memory between poll cycles: the fetch
// window cursor and the status of the most recently notified homework.
// With the in-memory repository it is reset on restart (cursor
// re-initialized to the start time, suppression state lost); the
// Postgres repository makes it survive restarts.
type ReviewState struct {
	// Cursor is the unix timestamp lower bound of the next fetch window.
	Cursor int64
	// LastNotifiedStatus is empty until the first notification is sent.
	LastNotifiedStatus Status
}

// StateRepository persists and retrieves the single ReviewState record.
type StateRepository interface {
	Get(ctx context.Context) (*ReviewState, error)
	Save(ctx context.Context, state *ReviewState) error
}
