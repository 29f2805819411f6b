package validators

import (
	"strings"

	dto "bug-tracker.com/bug-tracker/internal/data_models"
	apperrors "bug-tracker.com/bug-tracker/internal/errors"
	"bug-tracker.com/bug-tracker/pkg/constants"
)

const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 1000
)

func ValidateCreateBugRequest(r *dto.CreateBugRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	if r.Status != "" && !constants.BugStatus(r.Status).Valid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}

func ValidateUpdateBugRequest(r *dto.UpdateBugRequest) error {
	if r.Title != nil {
		if err := validateTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := validateDescription(*r.Description); err != nil {
			return err
		}
	}
	if r.Status != nil && !constants.BugStatus(*r.Status).Valid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.ErrTitleRequired
	}
	if len([]rune(strings.TrimSpace(title))) > TitleMaxLen {
		return apperrors.ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.ErrDescriptionRequired
	}
	if len([]rune(strings.TrimSpace(description))) > DescriptionMaxLen {
		return apperrors.ErrDescriptionTooLong
	}
	return nil
}
