package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"checklist.com/daily-checklist/internal/testutil"
	"checklist.com/daily-checklist/pkg/constants"
)

func TestSaveQueue_LastEnqueuedSnapshotWins(t *testing.T) {
	adapter, _ := setupAdapter(t)
	queue := NewSaveQueue(adapter)
	defer queue.Shutdown(context.Background())

	state := sampleState()
	for i := 0; i < 20; i++ {
		state.LastResetDate = fmt.Sprintf("2024-01-%02d", i+1)
		if !queue.Enqueue(state.Clone()) {
			t.Fatalf("enqueue %d rejected", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := queue.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	loaded, err := adapter.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.LastResetDate != "2024-01-20" {
		t.Errorf("expected last snapshot to land, got lastResetDate %s", loaded.LastResetDate)
	}
}

func TestSaveQueue_RejectsAfterShutdown(t *testing.T) {
	adapter, _ := setupAdapter(t)
	queue := NewSaveQueue(adapter)

	queue.Enqueue(sampleState())
	queue.Shutdown(context.Background())

	if queue.Enqueue(sampleState()) {
		t.Error("expected enqueue after shutdown to be rejected")
	}
	if err := queue.Flush(context.Background()); err != nil {
		t.Errorf("Flush() after shutdown error = %v", err)
	}

	loaded, err := adapter.Load(context.Background())
	if err != nil || loaded == nil {
		t.Fatalf("expected snapshot written before shutdown, got %v, %v", loaded, err)
	}
}

func TestSaveQueue_EnqueueDoesNotWaitForStalledStorage(t *testing.T) {
	store := testutil.NewStallingStore()
	adapter := NewAdapter(store, constants.StateKey)
	queue := NewSaveQueue(adapter)
	defer queue.Shutdown(context.Background())
	defer store.Release()

	done := make(chan struct{})
	go func() {
		defer close(done)
		state := sampleState()
		for i := 0; i < 10; i++ {
			state.LastResetDate = fmt.Sprintf("2024-02-%02d", i+1)
			queue.Enqueue(state.Clone())
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked while storage was stalled")
	}

	store.Release()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := queue.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	loaded, err := adapter.Load(context.Background())
	if err != nil || loaded == nil {
		t.Fatalf("Load() = %v, %v", loaded, err)
	}
	if loaded.LastResetDate != "2024-02-10" {
		t.Errorf("expected newest snapshot to land, got lastResetDate %s", loaded.LastResetDate)
	}
	if writes := store.Writes(); writes > 2 {
		t.Errorf("expected pending snapshots to coalesce, got %d writes", writes)
	}
}

func TestSaveQueue_ShutdownReportsAbandonedWrite(t *testing.T) {
	store := testutil.NewStallingStore()
	queue := NewSaveQueue(NewAdapter(store, constants.StateKey))
	defer store.Release()

	queue.Enqueue(sampleState())
	deadline := time.Now().Add(2 * time.Second)
	for store.Writes() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("worker never started writing")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if queue.Shutdown(ctx) {
		t.Error("expected Shutdown to report the write still in progress")
	}
}
