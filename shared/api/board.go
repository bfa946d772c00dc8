package api

import (
	"github.com/ruralcrm/taskboard/shared/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type UpdateBoardRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Response DTOs

// BoardResponse wraps a single board
// Embed domain.Board to get all fields
type BoardResponse struct {
	domain.Board
}

// BoardListResponse wraps a list of boards
type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}
