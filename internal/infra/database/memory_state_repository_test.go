package database

import (
	"context"
	"testing"

	"homework_notification_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateRepository_EmptyUntilFirstSave(t *testing.T) {
	repo := NewInMemoryStateRepository()

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, ErrStateNotFound)
}

func TestInMemoryStateRepository_SaveAndGet(t *testing.T) {
	repo := NewInMemoryStateRepository()

	saved := &homework.ReviewState{Cursor: 1000, LastNotifiedStatus: homework.StatusReviewing}
	require.NoError(t, repo.Save(context.Background(), saved))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// The repository hands out copies; mutating one must not leak.
	got.LastNotifiedStatus = homework.StatusApproved
	again, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, homework.StatusReviewing, again.LastNotifiedStatus)

	saved.Cursor = 9999
	again, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1000, again.Cursor)
}
