package domain

import (
	"time"
)

type CardPriority string

const (
	PriorityHigh   CardPriority = "high"
	PriorityMedium CardPriority = "medium"
	PriorityLow    CardPriority = "low"
	PriorityNone   CardPriority = ""
)

func (p CardPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

type CardCreationData struct {
	TenantId    TenantId
	BoardId     BoardId
	ColumnId    ColumnId
	Title       string
	Description string
	DueDate     *time.Time
	Priority    CardPriority
	Labels      []string
	Assignee    string
}

// CardUpdateData never touches ColumnId or Position; moving is its own operation.
type CardUpdateData struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    CardPriority
	Labels      []string
	Assignee    string
	Done        bool
}

type Card struct {
	Id          CardId       `json:"id" bson:"_id"`
	TenantId    TenantId     `json:"-" bson:"tenantId"`
	BoardId     BoardId      `json:"boardId" bson:"boardId"` // denormalized from the column
	ColumnId    ColumnId     `json:"columnId" bson:"columnId"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Position    Position     `json:"position" bson:"position"`
	DueDate     *time.Time   `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Priority    CardPriority `json:"priority,omitempty" bson:"priority,omitempty"`
	Labels      []string     `json:"labels,omitempty" bson:"labels,omitempty"`
	Assignee    string       `json:"assignee,omitempty" bson:"assignee,omitempty"`
	Done        bool         `json:"done" bson:"done"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// Overdue reports whether the card counts as overdue at the given instant.
// A card due exactly at "now" is not overdue.
func (c *Card) Overdue(now time.Time) bool {
	return !c.Done && c.DueDate != nil && c.DueDate.Before(now)
}
