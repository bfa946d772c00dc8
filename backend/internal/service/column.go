package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ruralcrm/taskboard/shared/domain"
)

type ColumnService interface {
	Create(ctx context.Context, data domain.ColumnCreationData) (*domain.Column, error)
	GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error)
	Get(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error)
	Update(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) (*domain.Column, error)
	Delete(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error
}

type Column struct {
	storage ColumnStorage
	boards  BoardStorage
}

type ColumnStorage interface {
	CreateColumn(ctx context.Context, column *domain.Column) error
	GetColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error)
	GetColumnsByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error)
	CountColumns(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (int, error)
	UpdateColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) error
	DeleteColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error
}

func NewColumn(storage ColumnStorage, boards BoardStorage) ColumnService {
	return &Column{storage, boards}
}

// Create appends the column at the end of its board's ordering.
func (c *Column) Create(ctx context.Context, data domain.ColumnCreationData) (*domain.Column, error) {
	// The board reference is re-fetched tenant-scoped; a foreign board is
	// indistinguishable from a missing one.
	if _, err := c.boards.GetBoard(ctx, data.TenantId, data.BoardId); err != nil {
		return nil, err
	}

	count, err := c.storage.CountColumns(ctx, data.TenantId, data.BoardId)
	if err != nil {
		return nil, err
	}

	column := &domain.Column{
		Id:       uuid.NewString(),
		TenantId: data.TenantId,
		BoardId:  data.BoardId,
		Title:    sanitizeText(data.Title),
		Position: count,
		Color:    data.Color,
	}
	if err := c.storage.CreateColumn(ctx, column); err != nil {
		return nil, err
	}
	return column, nil
}

func (c *Column) GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error) {
	if _, err := c.boards.GetBoard(ctx, tenant, boardId); err != nil {
		return nil, err
	}
	return c.storage.GetColumnsByBoard(ctx, tenant, boardId)
}

func (c *Column) Get(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error) {
	return c.storage.GetColumn(ctx, tenant, id)
}

func (c *Column) Update(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) (*domain.Column, error) {
	upd.Title = sanitizeText(upd.Title)
	if err := c.storage.UpdateColumn(ctx, tenant, id, upd); err != nil {
		return nil, err
	}
	return c.storage.GetColumn(ctx, tenant, id)
}

func (c *Column) Delete(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error {
	return c.storage.DeleteColumn(ctx, tenant, id)
}
