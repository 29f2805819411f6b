package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bug-tracker.com/bug-tracker/pkg/constants"
	model "bug-tracker.com/bug-tracker/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Bug{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestBugRepository_CreateAndFind(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))
	ctx := context.Background()

	bug, err := repo.Create(ctx, "Login broken", "Cannot sign in with valid credentials", constants.StatusOpen)
	if err != nil {
		t.Fatalf("failed to create bug: %v", err)
	}

	if bug.ID == "" {
		t.Error("expected bug ID to be set")
	}
	if bug.CreatedAt.IsZero() || bug.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	fetched, err := repo.FindByID(ctx, bug.ID)
	if err != nil {
		t.Fatalf("failed to find bug: %v", err)
	}
	if fetched.Title != "Login broken" {
		t.Errorf("expected title %q, got %q", "Login broken", fetched.Title)
	}
	if fetched.Status != constants.StatusOpen {
		t.Errorf("expected status %s, got %s", constants.StatusOpen, fetched.Status)
	}
}

func TestBugRepository_FindByID_NotFound(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBugRepository_List_NewestFirst(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))
	ctx := context.Background()

	first, _ := repo.Create(ctx, "First", "Oldest bug", constants.StatusOpen)
	time.Sleep(5 * time.Millisecond)
	second, _ := repo.Create(ctx, "Second", "Newest bug", constants.StatusOpen)

	bugs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list bugs: %v", err)
	}

	if len(bugs) != 2 {
		t.Fatalf("expected 2 bugs, got %d", len(bugs))
	}
	if bugs[0].ID != second.ID || bugs[1].ID != first.ID {
		t.Error("expected newest-created bug first")
	}
}

func TestBugRepository_UpdateFields_Partial(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))
	ctx := context.Background()

	bug, _ := repo.Create(ctx, "Crash on save", "App crashes when saving", constants.StatusOpen)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.UpdateFields(ctx, bug.ID, map[string]interface{}{
		"status": constants.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("failed to update bug: %v", err)
	}

	if updated.Status != constants.StatusInProgress {
		t.Errorf("expected status %s, got %s", constants.StatusInProgress, updated.Status)
	}
	if updated.Title != "Crash on save" {
		t.Errorf("expected title untouched, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(bug.UpdatedAt) {
		t.Error("expected updated_at to be refreshed")
	}
	if !updated.CreatedAt.Equal(bug.CreatedAt) {
		t.Error("expected created_at to be immutable")
	}
}

func TestBugRepository_UpdateFields_NotFound(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))

	_, err := repo.UpdateFields(context.Background(), "no-such-id", map[string]interface{}{
		"status": constants.StatusResolved,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBugRepository_Delete(t *testing.T) {
	repo := NewBugRepository(setupTestDB(t))
	ctx := context.Background()

	bug, _ := repo.Create(ctx, "Typo", "Button label misspelled", constants.StatusOpen)

	if err := repo.Delete(ctx, bug.ID); err != nil {
		t.Fatalf("failed to delete bug: %v", err)
	}

	if _, err := repo.FindByID(ctx, bug.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected deleted bug to be gone, got %v", err)
	}

	if err := repo.Delete(ctx, bug.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
