package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"checklist.com/daily-checklist/internal/storage"
	"checklist.com/daily-checklist/pkg/constants"
	model "checklist.com/daily-checklist/pkg/models"
)

// Adapter stores the whole AppState as one JSON blob under a fixed key.
type Adapter struct {
	store storage.BlobStore
	key   string
}

func NewAdapter(store storage.BlobStore, key string) *Adapter {
	if key == "" {
		key = constants.StateKey
	}
	return &Adapter{store: store, key: key}
}

// Load returns the last saved state, or nil when nothing was saved yet.
func (a *Adapter) Load(ctx context.Context) (*model.AppState, error) {
	raw, err := a.store.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var stored storedState
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}

	state, err := stored.revive()
	if err != nil {
		return nil, fmt.Errorf("revive state: %w", err)
	}
	return state, nil
}

func (a *Adapter) Save(ctx context.Context, state model.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := a.store.Set(ctx, a.key, raw); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
