package repository

import (
	"context"
	"errors"
	"testing"

	"checklist.com/daily-checklist/internal/storage"
	"checklist.com/daily-checklist/internal/testutil"
)

func TestStateRepository_GetMissing(t *testing.T) {
	repo := NewStateRepository(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestStateRepository_SetOverwrites(t *testing.T) {
	repo := NewStateRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := repo.Set(ctx, "state", []byte("first")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set(ctx, "state", []byte("second")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := repo.Get(ctx, "state")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected second, got %s", got)
	}
}

func TestStateRepository_Delete(t *testing.T) {
	repo := NewStateRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := repo.Set(ctx, "state", []byte("value")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Delete(ctx, "state"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "state"); err != nil {
		t.Errorf("deleting a missing key should not fail, got %v", err)
	}

	if _, err := repo.Get(ctx, "state"); !errors.Is(err, storage.ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound after delete, got %v", err)
	}
}
