package domain

import (
	"time"
)

// ReportKind is the closed set of report types. It is resolved once at the
// handler boundary; services never branch on raw query strings.
type ReportKind int

const (
	ReportSummary ReportKind = iota
	ReportStatus
	ReportAssignee
)

// UnassignedLabel is the display label for cards without an assignee.
// Grouping itself keys on the Assigned flag, so a real user literally named
// "Unassigned" stays in a separate group.
const UnassignedLabel = "Unassigned"

type BoardSummary struct {
	BoardId         BoardId `json:"boardId"`
	Title           string  `json:"title"`
	ColumnCount     int     `json:"columnCount"`
	CardCount       int     `json:"cardCount"`
	DoneCount       int     `json:"doneCount"`
	PendingCount    int     `json:"pendingCount"`
	ProgressPercent int     `json:"progressPercent"`
}

type SummaryReport struct {
	Totals BoardSummary   `json:"totals"` // rollup across selected boards
	Boards []BoardSummary `json:"boards"`
}

type ColumnStatus struct {
	BoardId      BoardId  `json:"boardId"`
	ColumnId     ColumnId `json:"columnId"`
	Title        string   `json:"title"`
	HighCount    int      `json:"highCount"`
	MediumCount  int      `json:"mediumCount"`
	LowCount     int      `json:"lowCount"`
	NoneCount    int      `json:"noneCount"`
	DoneCount    int      `json:"doneCount"`
	PendingCount int      `json:"pendingCount"`
	OverdueCount int      `json:"overdueCount"`
}

type StatusReport struct {
	GeneratedAt time.Time      `json:"generatedAt"` // the single "now" used for overdue checks
	Columns     []ColumnStatus `json:"columns"`
}

type CardSummary struct {
	Id       CardId       `json:"id"`
	Title    string       `json:"title"`
	Done     bool         `json:"done"`
	DueDate  *time.Time   `json:"dueDate,omitempty"`
	Priority CardPriority `json:"priority,omitempty"`
	BoardId  BoardId      `json:"boardId"`
	ColumnId ColumnId     `json:"columnId"`
}

type AssigneeGroup struct {
	Assignee        string        `json:"assignee"`
	Assigned        bool          `json:"assigned"`
	Total           int           `json:"total"`
	DoneCount       int           `json:"doneCount"`
	PendingCount    int           `json:"pendingCount"`
	OverdueCount    int           `json:"overdueCount"`
	ProgressPercent int           `json:"progressPercent"`
	Cards           []CardSummary `json:"cards"`
}

type AssigneeReport struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Groups      []AssigneeGroup `json:"groups"`
}
