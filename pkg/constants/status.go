package constants

// BugStatus represents the lifecycle state of a bug.
type BugStatus string

const (
	StatusOpen       BugStatus = "open"
	StatusInProgress BugStatus = "in-progress"
	StatusResolved   BugStatus = "resolved"
)

// Statuses lists every valid bug status.
var Statuses = []BugStatus{StatusOpen, StatusInProgress, StatusResolved}

func (s BugStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
