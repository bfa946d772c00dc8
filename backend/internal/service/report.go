package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/ruralcrm/taskboard/shared/domain"
)

// Reports are computed fresh on every call. No caching, no incremental
// maintenance; the hierarchy is fanned out and folded per request.
type ReportService interface {
	Summary(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.SummaryReport, error)
	Status(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.StatusReport, error)
	Assignee(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.AssigneeReport, error)
}

type Report struct {
	boards  BoardStorage
	columns ColumnStorage
	cards   CardStorage
}

func NewReport(boards BoardStorage, columns ColumnStorage, cards CardStorage) ReportService {
	return &Report{boards, columns, cards}
}

// selectBoards resolves the optional board filter: one board (not-found
// propagates) or all of the tenant's boards.
func (r *Report) selectBoards(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Board, error) {
	if boardId != "" {
		board, err := r.boards.GetBoard(ctx, tenant, boardId)
		if err != nil {
			return nil, err
		}
		return []domain.Board{*board}, nil
	}
	return r.boards.GetBoards(ctx, tenant)
}

func progressPercent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

func (r *Report) Summary(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.SummaryReport, error) {
	boards, err := r.selectBoards(ctx, tenant, boardId)
	if err != nil {
		return nil, err
	}

	report := &domain.SummaryReport{Boards: []domain.BoardSummary{}}
	for _, board := range boards {
		columns, err := r.columns.GetColumnsByBoard(ctx, tenant, board.Id)
		if err != nil {
			return nil, err
		}
		cards, err := r.cards.GetCardsByBoard(ctx, tenant, board.Id)
		if err != nil {
			return nil, err
		}

		summary := domain.BoardSummary{
			BoardId:     board.Id,
			Title:       board.Title,
			ColumnCount: len(columns),
			CardCount:   len(cards),
		}
		for _, card := range cards {
			if card.Done {
				summary.DoneCount++
			} else {
				summary.PendingCount++
			}
		}
		summary.ProgressPercent = progressPercent(summary.DoneCount, summary.CardCount)

		report.Boards = append(report.Boards, summary)
		report.Totals.ColumnCount += summary.ColumnCount
		report.Totals.CardCount += summary.CardCount
		report.Totals.DoneCount += summary.DoneCount
		report.Totals.PendingCount += summary.PendingCount
	}
	report.Totals.ProgressPercent = progressPercent(report.Totals.DoneCount, report.Totals.CardCount)
	return report, nil
}

func (r *Report) Status(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.StatusReport, error) {
	boards, err := r.selectBoards(ctx, tenant, boardId)
	if err != nil {
		return nil, err
	}

	// "now" is evaluated once per request; dueDate == now is not overdue.
	now := time.Now().UTC()
	report := &domain.StatusReport{GeneratedAt: now, Columns: []domain.ColumnStatus{}}

	for _, board := range boards {
		columns, err := r.columns.GetColumnsByBoard(ctx, tenant, board.Id)
		if err != nil {
			return nil, err
		}
		cards, err := r.cards.GetCardsByBoard(ctx, tenant, board.Id)
		if err != nil {
			return nil, err
		}

		byColumn := map[domain.ColumnId][]domain.Card{}
		for _, card := range cards {
			byColumn[card.ColumnId] = append(byColumn[card.ColumnId], card)
		}

		for _, column := range columns {
			status := domain.ColumnStatus{BoardId: board.Id, ColumnId: column.Id, Title: column.Title}
			for _, card := range byColumn[column.Id] {
				switch card.Priority {
				case domain.PriorityHigh:
					status.HighCount++
				case domain.PriorityMedium:
					status.MediumCount++
				case domain.PriorityLow:
					status.LowCount++
				default:
					status.NoneCount++
				}
				if card.Done {
					status.DoneCount++
				} else {
					status.PendingCount++
				}
				if card.Overdue(now) {
					status.OverdueCount++
				}
			}
			report.Columns = append(report.Columns, status)
		}
	}
	return report, nil
}

func (r *Report) Assignee(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (*domain.AssigneeReport, error) {
	boards, err := r.selectBoards(ctx, tenant, boardId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	groups := map[string]*domain.AssigneeGroup{}

	for _, board := range boards {
		cards, err := r.cards.GetCardsByBoard(ctx, tenant, board.Id)
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			group, ok := groups[card.Assignee]
			if !ok {
				group = &domain.AssigneeGroup{Assignee: card.Assignee, Assigned: card.Assignee != ""}
				if !group.Assigned {
					group.Assignee = domain.UnassignedLabel
				}
				groups[card.Assignee] = group
			}

			group.Total++
			if card.Done {
				group.DoneCount++
			} else {
				group.PendingCount++
			}
			if card.Overdue(now) {
				group.OverdueCount++
			}
			group.Cards = append(group.Cards, domain.CardSummary{
				Id:       card.Id,
				Title:    card.Title,
				Done:     card.Done,
				DueDate:  card.DueDate,
				Priority: card.Priority,
				BoardId:  card.BoardId,
				ColumnId: card.ColumnId,
			})
		}
	}

	report := &domain.AssigneeReport{GeneratedAt: now, Groups: []domain.AssigneeGroup{}}
	for _, group := range groups {
		group.ProgressPercent = progressPercent(group.DoneCount, group.Total)
		report.Groups = append(report.Groups, *group)
	}
	// Named assignees alphabetically, the unassigned bucket last.
	sort.Slice(report.Groups, func(i, j int) bool {
		a, b := report.Groups[i], report.Groups[j]
		if a.Assigned != b.Assigned {
			return a.Assigned
		}
		return a.Assignee < b.Assignee
	})
	return report, nil
}
