package handler

import (
	"context"
	"net/http"

	"github.com/ruralcrm/taskboard/backend/internal/service"
	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	mw "github.com/ruralcrm/taskboard/shared/middleware"
	"github.com/ruralcrm/taskboard/shared/utils"
)

// Pinger is what the readiness probe needs from the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board  service.BoardService
	column service.ColumnService
	card   service.CardService
	report service.ReportService
	health Pinger
}

func New(board service.BoardService, column service.ColumnService, card service.CardService, report service.ReportService, health Pinger) *Handler {
	return &Handler{board, column, card, report, health}
}

// tenant resolves the caller's tenant or writes a 401. The auth middleware
// already guarantees it for routed requests; this is the backstop.
func tenant(w http.ResponseWriter, r *http.Request) (*domain.Tenant, bool) {
	t := mw.GetTenantFromContext(r)
	if t == nil {
		utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Authentication required", StatusCode: http.StatusUnauthorized})
		return nil, false
	}
	return t, true
}
