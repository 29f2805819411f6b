package model

import (
	"time"

	"bug-tracker.com/bug-tracker/pkg/constants"
)

type Bug struct {
	ID          string              `gorm:"primaryKey;size:36" json:"id"`
	Title       string              `gorm:"size:100;not null" json:"title"`
	Description string              `gorm:"size:1000;not null" json:"description"`
	Status      constants.BugStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}
