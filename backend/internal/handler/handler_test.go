package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ruralcrm/taskboard/shared/domain"
	mw "github.com/ruralcrm/taskboard/shared/middleware"
	"github.com/ruralcrm/taskboard/shared/utils"
)

// Function-field mocks so each test overrides only what it needs.

type mockBoardService struct {
	CreateFunc func(ctx context.Context, data domain.BoardCreationData) (*domain.Board, error)
	GetAllFunc func(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error)
	GetFunc    func(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error)
	UpdateFunc func(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) (*domain.Board, error)
	DeleteFunc func(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error
}

func (m *mockBoardService) Create(ctx context.Context, data domain.BoardCreationData) (*domain.Board, error) {
	return m.CreateFunc(ctx, data)
}
func (m *mockBoardService) GetAll(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error) {
	return m.GetAllFunc(ctx, tenant)
}
func (m *mockBoardService) Get(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error) {
	return m.GetFunc(ctx, tenant, id)
}
func (m *mockBoardService) Update(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) (*domain.Board, error) {
	return m.UpdateFunc(ctx, tenant, id, upd)
}
func (m *mockBoardService) Delete(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error {
	return m.DeleteFunc(ctx, tenant, id)
}

type mockColumnService struct {
	CreateFunc     func(ctx context.Context, data domain.ColumnCreationData) (*domain.Column, error)
	GetByBoardFunc func(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error)
	GetFunc        func(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error)
	UpdateFunc     func(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) (*domain.Column, error)
	DeleteFunc     func(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error
}

func (m *mockColumnService) Create(ctx context.Context, data domain.ColumnCreationData) (*domain.Column, error) {
	return m.CreateFunc(ctx, data)
}
func (m *mockColumnService) GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error) {
	return m.GetByBoardFunc(ctx, tenant, boardId)
}
func (m *mockColumnService) Get(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error) {
	return m.GetFunc(ctx, tenant, id)
}
func (m *mockColumnService) Update(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) (*domain.Column, error) {
	return m.UpdateFunc(ctx, tenant, id, upd)
}
func (m *mockColumnService) Delete(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error {
	return m.DeleteFunc(ctx, tenant, id)
}

type mockCardService struct {
	CreateFunc      func(ctx context.Context, data domain.CardCreationData) (*domain.Card, error)
	GetFunc         func(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error)
	GetByColumnFunc func(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error)
	GetByBoardFunc  func(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error)
	UpdateFunc      func(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) (*domain.Card, error)
	MoveFunc        func(ctx context.Context, tenant domain.TenantId, id domain.CardId, targetColumnId domain.ColumnId, targetPosition domain.Position) (*domain.Card, error)
	DeleteFunc      func(ctx context.Context, tenant domain.TenantId, id domain.CardId) error
}

func (m *mockCardService) Create(ctx context.Context, data domain.CardCreationData) (*domain.Card, error) {
	return m.CreateFunc(ctx, data)
}
func (m *mockCardService) Get(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error) {
	return m.GetFunc(ctx, tenant, id)
}
func (m *mockCardService) GetByColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error) {
	return m.GetByColumnFunc(ctx, tenant, columnId)
}
func (m *mockCardService) GetByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error) {
	return m.GetByBoardFunc(ctx, tenant, boardId)
}
func (m *mockCardService) Update(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) (*domain.Card, error) {
	return m.UpdateFunc(ctx, tenant, id, upd)
}
func (m *mockCardService) Move(ctx context.Context, tenant domain.TenantId, id domain.CardId, targetColumnId domain.ColumnId, targetPosition domain.Position) (*domain.Card, error) {
	return m.MoveFunc(ctx, tenant, id, targetColumnId, targetPosition)
}
func (m *mockCardService) Delete(ctx context.Context, tenant domain.TenantId, id domain.CardId) error {
	return m.DeleteFunc(ctx, tenant, id)
}

type mockReportService struct {
	SummaryFunc  func(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.SummaryReport, error)
	StatusFunc   func(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.StatusReport, error)
	AssigneeFunc func(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.AssigneeReport, error)
}

func (m *mockReportService) Summary(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.SummaryReport, error) {
	return m.SummaryFunc(ctx, tenant, boardId)
}
func (m *mockReportService) Status(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.StatusReport, error) {
	return m.StatusFunc(ctx, tenant, boardId)
}
func (m *mockReportService) Assignee(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.AssigneeReport, error) {
	return m.AssigneeFunc(ctx, tenant, boardId)
}

type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return nil
	}
	return m.PingFunc(ctx)
}

const testTenant = "tenant-1"

// testRouter mounts the handler on the real routes with a stub auth middleware
// that injects the test tenant.
func testRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), mw.TenantClaimsKey, &domain.Tenant{Id: testTenant})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Route("/boards", func(r chi.Router) {
		r.Get("/", h.GetBoards)
		r.Post("/", h.CreateBoard)
		r.Get("/{boardID}", h.GetBoard)
		r.Put("/{boardID}", h.UpdateBoard)
		r.Delete("/{boardID}", h.DeleteBoard)
	})
	r.Route("/columns", func(r chi.Router) {
		r.Get("/", h.GetColumns)
		r.Post("/", h.CreateColumn)
		r.Get("/{columnID}", h.GetColumn)
		r.Put("/{columnID}", h.UpdateColumn)
		r.Delete("/{columnID}", h.DeleteColumn)
	})
	r.Route("/cards", func(r chi.Router) {
		r.Get("/", h.GetCards)
		r.Post("/", h.CreateCard)
		r.Get("/{cardID}", h.GetCard)
		r.Put("/{cardID}", h.UpdateCard)
		r.Delete("/{cardID}", h.DeleteCard)
		r.Post("/{cardID}/move", h.MoveCard)
	})
	r.Get("/reports", h.GetReport)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Envelope {
	t.Helper()
	var env utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
