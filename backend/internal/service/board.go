package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ruralcrm/taskboard/shared/domain"
)

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, data domain.BoardCreationData) (*domain.Board, error)
	GetAll(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error)
	Get(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error)
	Update(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) (*domain.Board, error)
	Delete(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, board *domain.Board) error
	GetBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error)
	GetBoards(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error)
	UpdateBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) error
	DeleteBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) Create(ctx context.Context, data domain.BoardCreationData) (*domain.Board, error) {
	board := &domain.Board{
		Id:          uuid.NewString(),
		TenantId:    data.TenantId,
		Title:       sanitizeText(data.Title),
		Description: sanitizeText(data.Description),
		Color:       data.Color,
		CreatedAt:   time.Now().UTC(),
	}
	if err := b.storage.CreateBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Board) GetAll(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error) {
	return b.storage.GetBoards(ctx, tenant)
}

func (b *Board) Get(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error) {
	return b.storage.GetBoard(ctx, tenant, id)
}

func (b *Board) Update(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) (*domain.Board, error) {
	upd.Title = sanitizeText(upd.Title)
	upd.Description = sanitizeText(upd.Description)
	if err := b.storage.UpdateBoard(ctx, tenant, id, upd); err != nil {
		return nil, err
	}
	return b.storage.GetBoard(ctx, tenant, id)
}

func (b *Board) Delete(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error {
	return b.storage.DeleteBoard(ctx, tenant, id)
}
