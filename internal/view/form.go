package view

import (
	"fmt"
	"strings"

	"bug-tracker.com/bug-tracker/pkg/constants"
)

// BugDraft is the creation form's working copy of a bug.
type BugDraft struct {
	Title       string
	Description string
	Status      constants.BugStatus
}

// SubmitFunc receives the validated draft and a reset callback. The form
// never clears itself: the caller decides when the draft is confirmed
// persisted and invokes reset.
type SubmitFunc func(draft BugDraft, reset func())

// Form holds the creation form state: the draft, a local validation message,
// an external submission error, and the busy flag. Validation and submission
// errors are independent channels.
type Form struct {
	draft         BugDraft
	validationErr string
	submitErr     string
	loading       bool
}

func NewForm() *Form {
	return &Form{draft: BugDraft{Status: constants.StatusOpen}}
}

// SetTitle caps the title at 100 characters, mirroring the store-side limit.
// Any edit clears the local validation message.
func (f *Form) SetTitle(title string) {
	f.draft.Title = truncateRunes(title, 100)
	f.validationErr = ""
}

func (f *Form) SetDescription(description string) {
	f.draft.Description = truncateRunes(description, 1000)
	f.validationErr = ""
}

func (f *Form) SetStatus(status constants.BugStatus) {
	if !status.Valid() {
		return
	}
	f.draft.Status = status
	f.validationErr = ""
}

// SetLoading toggles the busy flag; while set, Submit is a no-op.
func (f *Form) SetLoading(loading bool) {
	f.loading = loading
}

// SetError records the message of a failed external submission.
func (f *Form) SetError(msg string) {
	f.submitErr = msg
}

func (f *Form) Draft() BugDraft { return f.draft }

func (f *Form) ValidationError() string { return f.validationErr }

func (f *Form) SubmissionError() string { return f.submitErr }

func (f *Form) Loading() bool { return f.loading }

// Submit validates the draft and hands it to fn. Whitespace is trimmed for
// the emptiness check only; the draft keeps whatever the user typed. On a
// validation failure fn is not called.
func (f *Form) Submit(fn SubmitFunc) {
	if f.loading {
		return
	}

	if strings.TrimSpace(f.draft.Title) == "" || strings.TrimSpace(f.draft.Description) == "" {
		f.validationErr = "Title and description are required"
		return
	}

	f.validationErr = ""
	fn(f.draft, f.reset)
}

func (f *Form) reset() {
	f.draft = BugDraft{Status: constants.StatusOpen}
}

func (f *Form) Render() string {
	var sb strings.Builder
	sb.WriteString("Report a Bug\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", f.draft.Title))
	sb.WriteString(fmt.Sprintf("Description: %s\n", f.draft.Description))
	sb.WriteString(fmt.Sprintf("Status: %s\n", f.draft.Status))

	if f.validationErr != "" {
		sb.WriteString(fmt.Sprintf("Validation: %s\n", f.validationErr))
	}
	if f.submitErr != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n", f.submitErr))
	}

	if f.loading {
		sb.WriteString("[Submitting...] (disabled)")
	} else {
		sb.WriteString("[Submit]")
	}
	return sb.String()
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
