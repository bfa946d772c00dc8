package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruralcrm/taskboard/shared/api"
	"github.com/ruralcrm/taskboard/shared/domain"
	"github.com/ruralcrm/taskboard/shared/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Create(r.Context(), domain.BoardCreationData{
		TenantId:    t.Id,
		Title:       body.Title,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteCreated(w, api.BoardResponse{Board: *board})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	boards, err := h.board.GetAll(r.Context(), t.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.BoardListResponse{Boards: boards})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	board, err := h.board.Get(r.Context(), t.Id, chi.URLParam(r, "boardID"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.BoardResponse{Board: *board})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.UpdateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Update(r.Context(), t.Id, chi.URLParam(r, "boardID"), domain.BoardUpdateData{
		Title:       body.Title,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.BoardResponse{Board: *board})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	if err := h.board.Delete(r.Context(), t.Id, chi.URLParam(r, "boardID")); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, nil)
}
