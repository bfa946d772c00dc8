package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralcrm/taskboard/shared/domain"
)

func TestCardCRUD(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()
	board := mustCreateBoard(t, ctx, tenant)
	column := mustCreateColumn(t, ctx, tenant, board.Id, 0)

	card := mustCreateCard(t, ctx, tenant, board.Id, column.Id, 0)

	t.Run("get", func(t *testing.T) {
		got, err := storage.GetCard(ctx, tenant, card.Id)
		require.NoError(t, err)
		assert.Equal(t, card.Title, got.Title)
		assert.Equal(t, column.Id, got.ColumnId)
		assert.Equal(t, 0, got.Position)
	})

	t.Run("get foreign tenant", func(t *testing.T) {
		_, err := storage.GetCard(ctx, newTenant(), card.Id)
		assertNotFound(t, err)
	})

	t.Run("update rewrites mutable fields", func(t *testing.T) {
		due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Millisecond)
		err := storage.UpdateCard(ctx, tenant, card.Id, domain.CardUpdateData{
			Title:    "follow up with bank",
			Priority: domain.PriorityHigh,
			Labels:   []string{"finance"},
			Assignee: "marta",
			DueDate:  &due,
			Done:     true,
		})
		require.NoError(t, err)

		got, err := storage.GetCard(ctx, tenant, card.Id)
		require.NoError(t, err)
		assert.Equal(t, "follow up with bank", got.Title)
		assert.Equal(t, domain.PriorityHigh, got.Priority)
		assert.Equal(t, []string{"finance"}, got.Labels)
		assert.True(t, got.Done)
		require.NotNil(t, got.DueDate)
		assert.True(t, got.DueDate.Equal(due))
		assert.True(t, got.UpdatedAt.After(card.UpdatedAt), "updatedAt must be bumped")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storage.DeleteCard(ctx, tenant, card.Id))
		_, err := storage.GetCard(ctx, tenant, card.Id)
		assertNotFound(t, err)
		assertNotFound(t, storage.DeleteCard(ctx, tenant, card.Id))
	})
}

func TestCardListingAndCounts(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()
	board := mustCreateBoard(t, ctx, tenant)
	colA := mustCreateColumn(t, ctx, tenant, board.Id, 0)
	colB := mustCreateColumn(t, ctx, tenant, board.Id, 1)

	// Insert out of position order to prove the sort comes from the query.
	c2 := mustCreateCard(t, ctx, tenant, board.Id, colA.Id, 2)
	c0 := mustCreateCard(t, ctx, tenant, board.Id, colA.Id, 0)
	c1 := mustCreateCard(t, ctx, tenant, board.Id, colA.Id, 1)
	mustCreateCard(t, ctx, tenant, board.Id, colB.Id, 0)

	t.Run("by column in position order", func(t *testing.T) {
		cards, err := storage.GetCardsByColumn(ctx, tenant, colA.Id)
		require.NoError(t, err)
		require.Len(t, cards, 3)
		assert.Equal(t, []string{c0.Id, c1.Id, c2.Id}, []string{cards[0].Id, cards[1].Id, cards[2].Id})
	})

	t.Run("by board covers all columns", func(t *testing.T) {
		cards, err := storage.GetCardsByBoard(ctx, tenant, board.Id)
		require.NoError(t, err)
		assert.Len(t, cards, 4)
	})

	t.Run("count per column", func(t *testing.T) {
		count, err := storage.CountCardsInColumn(ctx, tenant, colA.Id)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		count, err = storage.CountCardsInColumn(ctx, tenant, colB.Id)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty column lists empty, not nil error", func(t *testing.T) {
		empty := mustCreateColumn(t, ctx, tenant, board.Id, 2)
		cards, err := storage.GetCardsByColumn(ctx, tenant, empty.Id)
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}

func TestSetCardColumnAndPosition(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant()
	board := mustCreateBoard(t, ctx, tenant)
	colA := mustCreateColumn(t, ctx, tenant, board.Id, 0)
	colB := mustCreateColumn(t, ctx, tenant, board.Id, 1)
	card := mustCreateCard(t, ctx, tenant, board.Id, colA.Id, 0)

	t.Run("set column rewrites columnId and boardId", func(t *testing.T) {
		require.NoError(t, storage.SetCardColumn(ctx, tenant, card.Id, colB.Id, board.Id))
		got, err := storage.GetCard(ctx, tenant, card.Id)
		require.NoError(t, err)
		assert.Equal(t, colB.Id, got.ColumnId)
		assert.Equal(t, board.Id, got.BoardId)
	})

	t.Run("set position", func(t *testing.T) {
		require.NoError(t, storage.SetCardPosition(ctx, tenant, card.Id, 4))
		got, err := storage.GetCard(ctx, tenant, card.Id)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Position)
	})

	t.Run("foreign tenant cannot re-home a card", func(t *testing.T) {
		assertNotFound(t, storage.SetCardColumn(ctx, newTenant(), card.Id, colA.Id, board.Id))
		assertNotFound(t, storage.SetCardPosition(ctx, newTenant(), card.Id, 0))
	})
}
