package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruralcrm/taskboard/shared/api"
	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/utils"
)

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.CreateCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	card, err := h.card.Create(r.Context(), domain.CardCreationData{
		TenantId:    t.Id,
		BoardId:     body.BoardId,
		ColumnId:    body.ColumnId,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Priority:    domain.CardPriority(body.Priority),
		Labels:      body.Labels,
		Assignee:    body.Assignee,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteCreated(w, api.CardResponse{Card: *card})
}

// GetCards lists cards scoped to a column (column order) or a board.
func (h *Handler) GetCards(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	columnId := r.URL.Query().Get("columnId")
	boardId := r.URL.Query().Get("boardId")

	var cards []domain.Card
	var err error
	switch {
	case columnId != "":
		cards, err = h.card.GetByColumn(r.Context(), t.Id, columnId)
	case boardId != "":
		cards, err = h.card.GetByBoard(r.Context(), t.Id, boardId)
	default:
		utils.WriteError(w, internal_errors.BadRequest("boardId or columnId query parameter is required"))
		return
	}
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.CardListResponse{Cards: cards})
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	card, err := h.card.Get(r.Context(), t.Id, chi.URLParam(r, "cardID"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.CardResponse{Card: *card})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.UpdateCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	card, err := h.card.Update(r.Context(), t.Id, chi.URLParam(r, "cardID"), domain.CardUpdateData{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Priority:    domain.CardPriority(body.Priority),
		Labels:      body.Labels,
		Assignee:    body.Assignee,
		Done:        body.Done,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.CardResponse{Card: *card})
}

func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	var body api.MoveCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	card, err := h.card.Move(r.Context(), t.Id, chi.URLParam(r, "cardID"), body.ColumnId, *body.Position)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, api.CardResponse{Card: *card})
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	if err := h.card.Delete(r.Context(), t.Id, chi.URLParam(r, "cardID")); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, nil)
}
