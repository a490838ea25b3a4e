package user_test

import (
	"context"
	"testing"

	"go-sapmock/internal/user"
	usererrors "go-sapmock/internal/user/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetUsers(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(zap.NewNop())

	t.Run("returns the seeded set", func(t *testing.T) {
		users, err := svc.GetUsers(ctx, 0, 10, "")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "U001", users[0].UserID)
		assert.Equal(t, "U002", users[1].UserID)
	})

	t.Run("modifiedAt gt keeps strictly newer users", func(t *testing.T) {
		users, err := svc.GetUsers(ctx, 0, 10, "modifiedAt gt '2025-06-01T12:00:00Z'")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "U002", users[0].UserID)
	})

	t.Run("an unparseable timestamp disables the filter", func(t *testing.T) {
		users, err := svc.GetUsers(ctx, 0, 10, "modifiedAt gt 'yesterday'")
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("skip past the end yields an empty page", func(t *testing.T) {
		users, err := svc.GetUsers(ctx, 5, 10, "")
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("top slices the page", func(t *testing.T) {
		users, err := svc.GetUsers(ctx, 0, 1, "")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "U001", users[0].UserID)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(zap.NewNop())

	resp, err := svc.GetUser(ctx, "U001")
	require.NoError(t, err)
	assert.Equal(t, "HR", resp.Department)
	assert.Equal(t, "2025-06-01T12:00:00Z", resp.ModifiedAt)

	_, err = svc.GetUser(ctx, "U999")
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}
