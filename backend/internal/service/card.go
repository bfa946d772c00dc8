package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/logger"
)

var (
	cardMoves = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "card_moves_total",
		Help:      "Total number of successful card move operations",
	})
	partialReorders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "card_move_partial_reorders_total",
		Help:      "Card moves that left a column partially renumbered",
	})
)

type CardService interface {
	Create(ctx context.Context, data domain.CardCreationData) (*domain.Card, error)
	Get(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error)
	GetByColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error)
	GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error)
	Update(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) (*domain.Card, error)
	Move(ctx context.Context, tenant domain.TenantId, id domain.CardId, targetColumnId domain.ColumnId, targetPosition domain.Position) (*domain.Card, error)
	Delete(ctx context.Context, tenant domain.TenantId, id domain.CardId) error
}

type Card struct {
	storage CardStorage
	columns ColumnStorage
	boards  BoardStorage
	locks   columnLocks
}

type CardStorage interface {
	CreateCard(ctx context.Context, card *domain.Card) error
	GetCard(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error)
	GetCardsByColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error)
	GetCardsByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error)
	CountCardsInColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) (int, error)
	UpdateCard(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) error
	SetCardColumn(ctx context.Context, tenant domain.TenantId, id domain.CardId, columnId domain.ColumnId, boardId domain.BoardId) error
	SetCardPosition(ctx context.Context, tenant domain.TenantId, id domain.CardId, position domain.Position) error
	DeleteCard(ctx context.Context, tenant domain.TenantId, id domain.CardId) error
}

func NewCard(storage CardStorage, columns ColumnStorage, boards BoardStorage) CardService {
	return &Card{storage: storage, columns: columns, boards: boards}
}

func lockKey(tenant domain.TenantId, columnId domain.ColumnId) string {
	return tenant + "/" + columnId
}

// lockOwningColumn acquires the lock for the card's current column plus any
// extra keys, then re-fetches the card. The card can be re-homed by a
// concurrent move between the caller's fetch and the lock; when that happens
// the stale lock is released and acquisition retries against the card's
// current column, so the caller always holds the lock of the column it will
// re-linearize.
func (c *Card) lockOwningColumn(ctx context.Context, tenant domain.TenantId, card *domain.Card, extra ...string) (*domain.Card, func(), error) {
	for {
		keys := append([]string{lockKey(tenant, card.ColumnId)}, extra...)
		unlock := c.locks.lock(keys...)

		fresh, err := c.storage.GetCard(ctx, tenant, card.Id)
		if err != nil {
			unlock()
			return nil, nil, err
		}
		if fresh.ColumnId == card.ColumnId {
			return fresh, unlock, nil
		}
		unlock()
		card = fresh
	}
}

// Create appends the card at the end of its column.
func (c *Card) Create(ctx context.Context, data domain.CardCreationData) (*domain.Card, error) {
	// Re-fetch the referenced column tenant-scoped; never trust client ids.
	column, err := c.columns.GetColumn(ctx, data.TenantId, data.ColumnId)
	if err != nil {
		return nil, err
	}
	if data.BoardId != column.BoardId {
		return nil, internal_errors.BadRequest("Card boardId must match its column's board")
	}

	unlock := c.locks.lock(lockKey(data.TenantId, column.Id))
	defer unlock()

	count, err := c.storage.CountCardsInColumn(ctx, data.TenantId, column.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	card := &domain.Card{
		Id:          uuid.NewString(),
		TenantId:    data.TenantId,
		BoardId:     column.BoardId,
		ColumnId:    column.Id,
		Title:       sanitizeText(data.Title),
		Description: sanitizeText(data.Description),
		Position:    count,
		DueDate:     data.DueDate,
		Priority:    data.Priority,
		Labels:      data.Labels,
		Assignee:    data.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.storage.CreateCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *Card) Get(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error) {
	return c.storage.GetCard(ctx, tenant, id)
}

func (c *Card) GetByColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error) {
	if _, err := c.columns.GetColumn(ctx, tenant, columnId); err != nil {
		return nil, err
	}
	return c.storage.GetCardsByColumn(ctx, tenant, columnId)
}

func (c *Card) GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error) {
	if _, err := c.boards.GetBoard(ctx, tenant, boardId); err != nil {
		return nil, err
	}
	return c.storage.GetCardsByBoard(ctx, tenant, boardId)
}

func (c *Card) Update(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) (*domain.Card, error) {
	if !upd.Priority.Valid() {
		return nil, internal_errors.BadRequest("Invalid priority")
	}
	upd.Title = sanitizeText(upd.Title)
	upd.Description = sanitizeText(upd.Description)
	if err := c.storage.UpdateCard(ctx, tenant, id, upd); err != nil {
		return nil, err
	}
	return c.storage.GetCard(ctx, tenant, id)
}

// Move re-homes a card and restores the dense 0..n-1 ordering of the affected
// column(s). The first write (column/board of the card itself) is the
// authoritative one; renumbering failures after it are surfaced, not rolled
// back, and heal on the next successful re-linearization of the column.
func (c *Card) Move(ctx context.Context, tenant domain.TenantId, id domain.CardId, targetColumnId domain.ColumnId, targetPosition domain.Position) (*domain.Card, error) {
	card, err := c.storage.GetCard(ctx, tenant, id)
	if err != nil {
		return nil, err
	}
	target, err := c.columns.GetColumn(ctx, tenant, targetColumnId)
	if err != nil {
		return nil, err
	}

	card, unlock, err := c.lockOwningColumn(ctx, tenant, card, lockKey(tenant, target.Id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	destCards, err := c.storage.GetCardsByColumn(ctx, tenant, target.Id)
	if err != nil {
		return nil, err
	}
	sameColumn := card.ColumnId == target.Id

	// Clamp to the destination's post-move bounds; the moved card does not
	// count against them when it already lives there.
	destCount := len(destCards)
	if sameColumn {
		destCount--
	}
	if targetPosition < 0 {
		targetPosition = 0
	}
	if targetPosition > destCount {
		targetPosition = destCount
	}

	// Step 1: the card's new home. Fails atomically, nothing written yet.
	if err := c.storage.SetCardColumn(ctx, tenant, card.Id, target.Id, target.BoardId); err != nil {
		return nil, err
	}

	// Step 2: close the gap the card left behind.
	if !sameColumn {
		if err := c.relinearize(ctx, tenant, card.ColumnId); err != nil {
			return nil, c.partialReorder(card.Id, card.ColumnId, err)
		}
	}

	// Step 3: splice the card into the destination at the target index.
	if err := c.relinearizeAround(ctx, tenant, target.Id, card.Id, targetPosition); err != nil {
		return nil, c.partialReorder(card.Id, target.Id, err)
	}

	cardMoves.Inc()
	return c.storage.GetCard(ctx, tenant, card.Id)
}

// Delete removes the card and re-linearizes its column so the ordering stays
// dense and later appends land at the right index.
func (c *Card) Delete(ctx context.Context, tenant domain.TenantId, id domain.CardId) error {
	card, err := c.storage.GetCard(ctx, tenant, id)
	if err != nil {
		return err
	}

	card, unlock, err := c.lockOwningColumn(ctx, tenant, card)
	if err != nil {
		return err
	}
	defer unlock()

	if err := c.storage.DeleteCard(ctx, tenant, id); err != nil {
		return err
	}
	return c.relinearize(ctx, tenant, card.ColumnId)
}

// relinearize rewrites positions to 0..n-1 in the column's current order,
// touching only cards whose position actually changed.
func (c *Card) relinearize(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) error {
	cards, err := c.storage.GetCardsByColumn(ctx, tenant, columnId)
	if err != nil {
		return err
	}
	for i := range cards {
		if cards[i].Position != i {
			if err := c.storage.SetCardPosition(ctx, tenant, cards[i].Id, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// relinearizeAround does the destination half of a move: the moved card is
// separated from the rest, the rest keep their relative order, and the moved
// card is spliced in at the target index.
func (c *Card) relinearizeAround(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId, movedId domain.CardId, targetPosition domain.Position) error {
	cards, err := c.storage.GetCardsByColumn(ctx, tenant, columnId)
	if err != nil {
		return err
	}

	var moved *domain.Card
	rest := make([]domain.Card, 0, len(cards))
	for i := range cards {
		if cards[i].Id == movedId {
			moved = &cards[i]
		} else {
			rest = append(rest, cards[i])
		}
	}
	if moved == nil {
		return internal_errors.NotFound("Card not found")
	}
	if targetPosition > len(rest) {
		targetPosition = len(rest)
	}

	sequence := make([]domain.Card, 0, len(cards))
	sequence = append(sequence, rest[:targetPosition]...)
	sequence = append(sequence, *moved)
	sequence = append(sequence, rest[targetPosition:]...)

	for i := range sequence {
		if sequence[i].Position != i {
			if err := c.storage.SetCardPosition(ctx, tenant, sequence[i].Id, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Card) partialReorder(cardId domain.CardId, columnId domain.ColumnId, err error) error {
	partialReorders.Inc()
	logger.Log.Errorf("renumbering column %s after moving card %s failed: %v", columnId, cardId, err)
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Card was moved but column renumbering did not finish; re-fetch and retry the move",
		StatusCode: http.StatusInternalServerError,
	}
}
