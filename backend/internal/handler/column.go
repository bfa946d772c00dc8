package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruralcrm/taskboard/shared/api"
	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/utils"
)

func (h *Handler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.CreateColumnRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	column, err := h.column.Create(r.Context(), domain.ColumnCreationData{
		TenantId: t.Id,
		BoardId:  body.BoardId,
		Title:    body.Title,
		Color:    body.Color,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteCreated(w, api.ColumnResponse{Column: *column})
}

func (h *Handler) GetColumns(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	boardId := r.URL.Query().Get("boardId")
	if boardId == "" {
		utils.WriteError(w, internal_errors.BadRequest("boardId query parameter is required"))
		return
	}

	columns, err := h.column.GetByBoard(r.Context(), t.Id, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.ColumnListResponse{Columns: columns})
}

func (h *Handler) GetColumn(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	column, err := h.column.Get(r.Context(), t.Id, chi.URLParam(r, "columnID"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.ColumnResponse{Column: *column})
}

func (h *Handler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.UpdateColumnRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	column, err := h.column.Update(r.Context(), t.Id, chi.URLParam(r, "columnID"), domain.ColumnUpdateData{
		Title: body.Title,
		Color: body.Color,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.ColumnResponse{Column: *column})
}

func (h *Handler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	if err := h.column.Delete(r.Context(), t.Id, chi.URLParam(r, "columnID")); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, nil)
}
