package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
)

func TestBoardCRUD(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()

	board := mustCreateBoard(t, ctx, tenant)

	t.Run("get returns the stored board", func(t *testing.T) {
		got, err := storage.GetBoard(ctx, tenant, board.Id)
		require.NoError(t, err)
		assert.Equal(t, board.Id, got.Id)
		assert.Equal(t, board.Title, got.Title)
		assert.Equal(t, tenant, got.TenantId)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := storage.GetBoard(ctx, tenant, "missing")
		assertNotFound(t, err)
	})

	t.Run("get with foreign tenant", func(t *testing.T) {
		_, err := storage.GetBoard(ctx, newTenant(), board.Id)
		assertNotFound(t, err)
	})

	t.Run("list is tenant scoped and sorted by creation time", func(t *testing.T) {
		second := mustCreateBoard(t, ctx, tenant)
		mustCreateBoard(t, ctx, newTenant()) // other tenant, must not appear

		boards, err := storage.GetBoards(ctx, tenant)
		require.NoError(t, err)
		require.Len(t, boards, 2)
		assert.Equal(t, board.Id, boards[0].Id)
		assert.Equal(t, second.Id, boards[1].Id)
	})

	t.Run("update", func(t *testing.T) {
		err := storage.UpdateBoard(ctx, tenant, board.Id, domain.BoardUpdateData{Title: "renamed", Color: "#112233"})
		require.NoError(t, err)

		got, err := storage.GetBoard(ctx, tenant, board.Id)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, "#112233", got.Color)
	})

	t.Run("update unknown id", func(t *testing.T) {
		err := storage.UpdateBoard(ctx, tenant, "missing", domain.BoardUpdateData{Title: "x"})
		assertNotFound(t, err)
	})
}

func TestBoardDeleteCascadesStorage(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()

	board := mustCreateBoard(t, ctx, tenant)
	column := mustCreateColumn(t, ctx, tenant, board.Id, 0)
	card := mustCreateCard(t, ctx, tenant, board.Id, column.Id, 0)

	require.NoError(t, storage.DeleteBoard(ctx, tenant, board.Id))

	_, err := storage.GetBoard(ctx, tenant, board.Id)
	assertNotFound(t, err)
	_, err = storage.GetColumn(ctx, tenant, column.Id)
	assertNotFound(t, err)
	_, err = storage.GetCard(ctx, tenant, card.Id)
	assertNotFound(t, err)

	t.Run("delete again", func(t *testing.T) {
		assertNotFound(t, storage.DeleteBoard(ctx, tenant, board.Id))
	})
}

func TestBoardDeleteForeignTenantIsNoop(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()
	board := mustCreateBoard(t, ctx, tenant)

	assertNotFound(t, storage.DeleteBoard(ctx, newTenant(), board.Id))

	// Board survives the foreign attempt.
	_, err := storage.GetBoard(ctx, tenant, board.Id)
	require.NoError(t, err)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "expected ErrorWithStatusCode, got %T: %v", err, err)
	assert.Equal(t, 404, e.StatusCode)
}
