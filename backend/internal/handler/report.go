package handler

import (
	"net/http"

	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/utils"
)

// parseReportKind resolves the stringly-typed query parameter into the closed
// enum once, at the boundary.
func parseReportKind(s string) (domain.ReportKind, error) {
	switch s {
	case "summary":
		return domain.ReportSummary, nil
	case "status":
		return domain.ReportStatus, nil
	case "assignee":
		return domain.ReportAssignee, nil
	}
	return 0, internal_errors.BadRequest("type must be one of summary, status, assignee")
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant(w, r)
	if !ok {
		return
	}

	kind, err := parseReportKind(r.URL.Query().Get("type"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	boardId := r.URL.Query().Get("boardId")

	var report interface{}
	switch kind {
	case domain.ReportSummary:
		report, err = h.report.Summary(r.Context(), t.Id, boardId)
	case domain.ReportStatus:
		report, err = h.report.Status(r.Context(), t.Id, boardId)
	case domain.ReportAssignee:
		report, err = h.report.Assignee(r.Context(), t.Id, boardId)
	}
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, report)
}
