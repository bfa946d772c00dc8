package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralcrm/taskboard/shared/domain"
)

func TestColumnCreateAppends(t *testing.T) {
	f := newFakeStore()
	seedBoard(f, tenantA, "b1")
	s := NewColumn(f, f)

	for i, title := range []string{"todo", "doing", "done"} {
		column, err := s.Create(context.Background(), domain.ColumnCreationData{
			TenantId: tenantA, BoardId: "b1", Title: title,
		})
		require.NoError(t, err)
		assert.Equal(t, i, column.Position)
	}

	columns, err := s.GetByBoard(context.Background(), tenantA, "b1")
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, "todo", columns[0].Title)
	assert.Equal(t, "done", columns[2].Title)
}

func TestColumnCreateRequiresOwnBoard(t *testing.T) {
	f := newFakeStore()
	seedBoard(f, tenantA, "b1")
	s := NewColumn(f, f)

	_, err := s.Create(context.Background(), domain.ColumnCreationData{TenantId: tenantA, BoardId: "ghost", Title: "t"})
	requireStatus(t, err, 404)

	_, err = s.Create(context.Background(), domain.ColumnCreationData{TenantId: tenantB, BoardId: "b1", Title: "t"})
	requireStatus(t, err, 404)
}

func TestColumnDeleteCascadesCards(t *testing.T) {
	f := newFakeStore()
	seedBoard(f, tenantA, "b1")
	seedColumn(f, tenantA, "b1", "x", 0)
	seedCard(f, tenantA, "b1", "x", "A", 0)
	s := NewColumn(f, f)

	require.NoError(t, s.Delete(context.Background(), tenantA, "x"))
	_, err := f.GetCard(context.Background(), tenantA, "A")
	requireStatus(t, err, 404)
}

func TestColumnUpdateSanitizesTitle(t *testing.T) {
	f := newFakeStore()
	seedBoard(f, tenantA, "b1")
	seedColumn(f, tenantA, "b1", "x", 0)
	s := NewColumn(f, f)

	column, err := s.Update(context.Background(), tenantA, "x", domain.ColumnUpdateData{Title: "  <b>In review</b> "})
	require.NoError(t, err)
	assert.Equal(t, "In review", column.Title)
}
