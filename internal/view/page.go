package view

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bug-tracker.com/bug-tracker/internal/client"
	"bug-tracker.com/bug-tracker/pkg/constants"
	model "bug-tracker.com/bug-tracker/pkg/models"
)

// Page is the single application view: it owns the known bug set, the
// creation form, and the failure-isolation boundary, and drives one network
// call per user action. Local state changes only after a call succeeds.
type Page struct {
	client   *client.Client
	boundary *Boundary
	form     *Form

	bugs    []model.Bug
	loading bool
	busy    bool
	err     string
}

func NewPage(c *client.Client, logger *zap.Logger) *Page {
	return &Page{
		client:   c,
		boundary: NewBoundary(logger),
		form:     NewForm(),
	}
}

// Load fetches the full bug set. The busy indicator is cleared in a deferred
// step so it never sticks, whatever the call does. On failure the prior set
// is left untouched.
func (p *Page) Load(ctx context.Context) {
	p.loading = true
	p.err = ""
	defer func() {
		p.loading = false
	}()

	bugs, err := p.client.List(ctx)
	if err != nil {
		p.err = failureMessage(err)
		return
	}

	p.bugs = bugs
}

// Submit runs the creation flow: form validation, one create call, and on
// confirmed success the reset callback plus a refetch of the full set.
func (p *Page) Submit(ctx context.Context) {
	p.form.Submit(func(draft BugDraft, reset func()) {
		p.form.SetLoading(true)
		defer p.form.SetLoading(false)

		_, err := p.client.Create(ctx, client.CreateBugInput{
			Title:       draft.Title,
			Description: draft.Description,
			Status:      string(draft.Status),
		})
		if err != nil {
			p.form.SetError(failureMessage(err))
			return
		}

		p.form.SetError("")
		reset()
		p.Load(ctx)
	})
}

// ChangeStatus updates one bug's status; the local item is patched only with
// the record the server confirmed.
func (p *Page) ChangeStatus(ctx context.Context, id string, status constants.BugStatus) {
	p.busy = true
	defer func() {
		p.busy = false
	}()

	st := string(status)
	updated, err := p.client.Update(ctx, id, client.UpdateBugInput{Status: &st})
	if err != nil {
		p.err = failureMessage(err)
		return
	}

	p.err = ""
	for i := range p.bugs {
		if p.bugs[i].ID == id {
			p.bugs[i] = *updated
			break
		}
	}
}

// Delete removes one bug, dropping it locally only after the server
// confirms.
func (p *Page) Delete(ctx context.Context, id string) {
	p.busy = true
	defer func() {
		p.busy = false
	}()

	if err := p.client.Delete(ctx, id); err != nil {
		p.err = failureMessage(err)
		return
	}

	p.err = ""
	kept := p.bugs[:0]
	for _, bug := range p.bugs {
		if bug.ID != id {
			kept = append(kept, bug)
		}
	}
	p.bugs = kept
}

// Render draws the whole page inside the failure-isolation boundary.
func (p *Page) Render() string {
	return p.boundary.Render(func() string {
		list := List{
			Bugs:    p.bugs,
			Loading: p.loading,
			Err:     p.err,
			OnStatusChange: func(id string, status constants.BugStatus) {
				p.ChangeStatus(context.Background(), id, status)
			},
			OnDelete: func(id string) {
				p.Delete(context.Background(), id)
			},
		}
		return p.form.Render() + "\n\n" + list.Render()
	})
}

func (p *Page) Bugs() []model.Bug { return p.bugs }

func (p *Page) Err() string { return p.err }

func (p *Page) Loading() bool { return p.loading }

func (p *Page) Busy() bool { return p.busy }

func (p *Page) Form() *Form { return p.form }

func (p *Page) Boundary() *Boundary { return p.boundary }

// failureMessage prefers the message carried by the failure and falls back
// to a generic one.
func failureMessage(err error) string {
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return "Something went wrong"
}
