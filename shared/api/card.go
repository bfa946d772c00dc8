package api

import (
	"time"

	"github.com/ruralcrm/taskboard/shared/domain"
)

type CreateCardRequest struct {
	BoardId     string     `json:"boardId" validate:"required"`
	ColumnId    string     `json:"columnId" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Labels      []string   `json:"labels,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
}

type UpdateCardRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Labels      []string   `json:"labels,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Done        bool       `json:"done"`
}

// MoveCardRequest targets a zero-based index in the destination column's
// post-move ordering. Position is a pointer so an explicit 0 passes the
// required check.
type MoveCardRequest struct {
	ColumnId string `json:"columnId" validate:"required"`
	Position *int   `json:"position" validate:"required"`
}

type CardResponse struct {
	domain.Card
}

type CardListResponse struct {
	Cards []domain.Card `json:"cards"`
}
