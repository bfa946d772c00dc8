package api

import (
	"github.com/ruralcrm/taskboard/shared/domain"
)

type CreateColumnRequest struct {
	BoardId string `json:"boardId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Color   string `json:"color,omitempty"`
}

type UpdateColumnRequest struct {
	Title string `json:"title" validate:"required"`
	Color string `json:"color,omitempty"`
}

type ColumnResponse struct {
	domain.Column
}

type ColumnListResponse struct {
	Columns []domain.Column `json:"columns"`
}
