package services

import (
	"context"
	"errors"
	"strings"

	apperrors "bug-tracker.com/bug-tracker/internal/errors"
	repository "bug-tracker.com/bug-tracker/internal/repositories"
	"bug-tracker.com/bug-tracker/pkg/constants"
	model "bug-tracker.com/bug-tracker/pkg/models"
)

type BugService struct {
	repo *repository.BugRepository
}

func NewBugService(repo *repository.BugRepository) *BugService {
	return &BugService{repo: repo}
}

// BugUpdate is a partial update; nil fields are left untouched.
type BugUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

// CreateBug stores a new bug. Title and description are trimmed before
// storage so accepted records are never whitespace-padded; an empty status
// defaults to open.
func (s *BugService) CreateBug(ctx context.Context, title, description, status string) (*model.Bug, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if description == "" {
		return nil, apperrors.ErrDescriptionRequired
	}

	st := constants.StatusOpen
	if status != "" {
		st = constants.BugStatus(status)
		if !st.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	return s.repo.Create(ctx, title, description, st)
}

func (s *BugService) GetBug(ctx context.Context, id string) (*model.Bug, error) {
	bug, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return bug, nil
}

func (s *BugService) ListBugs(ctx context.Context) ([]model.Bug, error) {
	return s.repo.List(ctx)
}

func (s *BugService) UpdateBug(ctx context.Context, id string, upd BugUpdate) (*model.Bug, error) {
	fields := map[string]interface{}{}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		fields["title"] = title
	}

	if upd.Description != nil {
		description := strings.TrimSpace(*upd.Description)
		if description == "" {
			return nil, apperrors.ErrDescriptionRequired
		}
		fields["description"] = description
	}

	if upd.Status != nil {
		st := constants.BugStatus(*upd.Status)
		if !st.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		fields["status"] = st
	}

	bug, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return bug, nil
}

func (s *BugService) DeleteBug(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrBugNotFound
	}
	return err
}
