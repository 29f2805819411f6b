package view

import (
	"fmt"
	"strings"

	"bug-tracker.com/bug-tracker/pkg/constants"
	model "bug-tracker.com/bug-tracker/pkg/models"
)

const timestampLayout = "Jan 2, 2006 15:04"

// List renders the known set of bugs. It is a pure function of its inputs:
// item controls delegate to the caller-supplied handlers and the list itself
// mutates nothing.
type List struct {
	Bugs    []model.Bug
	Loading bool
	Err     string

	OnStatusChange func(id string, status constants.BugStatus)
	OnDelete       func(id string)
}

// Render shows exactly one of four views: error, loading, empty state, or
// the item list. A non-empty error wins over everything, including the
// loading indicator.
func (l *List) Render() string {
	if l.Err != "" {
		return fmt.Sprintf("Error: %s", l.Err)
	}
	if l.Loading {
		return "Loading bugs..."
	}
	if len(l.Bugs) == 0 {
		return "No bugs reported yet."
	}

	items := make([]string, 0, len(l.Bugs))
	for _, bug := range l.Bugs {
		items = append(items, renderItem(bug))
	}
	return strings.Join(items, "\n")
}

func renderItem(bug model.Bug) string {
	return fmt.Sprintf("[%s] %s (%s)\n  %s\n  created %s, updated %s\n  %s [Delete]",
		bug.ID,
		bug.Title,
		bug.Status,
		bug.Description,
		bug.CreatedAt.Format(timestampLayout),
		bug.UpdatedAt.Format(timestampLayout),
		statusControls(),
	)
}

// statusControls renders the status-change control, one option per valid
// status.
func statusControls() string {
	options := make([]string, len(constants.Statuses))
	for i, status := range constants.Statuses {
		options[i] = string(status)
	}
	return "[" + strings.Join(options, "|") + "]"
}

// ChangeStatus is the per-item status control.
func (l *List) ChangeStatus(id string, status constants.BugStatus) {
	if l.OnStatusChange != nil {
		l.OnStatusChange(id, status)
	}
}

// Delete is the per-item delete control.
func (l *List) Delete(id string) {
	if l.OnDelete != nil {
		l.OnDelete(id)
	}
}
