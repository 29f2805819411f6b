package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bug-tracker.com/bug-tracker/pkg/constants"
	model "bug-tracker.com/bug-tracker/pkg/models"
)

type BugRepository struct {
	db *gorm.DB
}

var ErrNotFound = errors.New("bug not found")

func NewBugRepository(db *gorm.DB) *BugRepository {
	return &BugRepository{db: db}
}

func (r *BugRepository) Create(ctx context.Context, title, description string, status constants.BugStatus) (*model.Bug, error) {
	now := time.Now().UTC()
	bug := &model.Bug{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(bug).Error; err != nil {
		return nil, err
	}

	return bug, nil
}

func (r *BugRepository) FindByID(ctx context.Context, id string) (*model.Bug, error) {
	var bug model.Bug
	err := r.db.WithContext(ctx).First(&bug, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bug, nil
}

func (r *BugRepository) List(ctx context.Context) ([]model.Bug, error) {
	var bugs []model.Bug
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&bugs).Error
	return bugs, err
}

// UpdateFields applies only the given columns, refreshing updated_at.
// Last write wins; there is no version check.
func (r *BugRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Bug, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()

		res := r.db.WithContext(ctx).Model(&model.Bug{}).
			Where("id = ?", id).
			Updates(fields)

		if res.Error != nil {
			return nil, res.Error
		}

		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *BugRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Bug{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
