package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"checklist.com/daily-checklist/internal/storage"
	model "checklist.com/daily-checklist/pkg/models"
)

// StateRepository is the SQLite-backed storage.BlobStore.
type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var record model.StateRecord
	err := r.db.WithContext(ctx).First(&record, "state_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

func (r *StateRepository) Set(ctx context.Context, key string, value []byte) error {
	record := model.StateRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&model.StateRecord{}, "state_key = ?", key).Error
}
