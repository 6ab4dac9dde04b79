package config

import (
	"log"

	repository "checklist.com/daily-checklist/internal/repositories"
	"checklist.com/daily-checklist/internal/storage"
)

// NewBlobStore opens the configured backend. The returned func releases it.
func NewBlobStore(cfg Config) (storage.BlobStore, func()) {
	switch cfg.StorageDriver {
	case StorageRedis:
		client := NewRedisClient(cfg.RedisAddr)
		log.Printf("using redis storage at %s", cfg.RedisAddr)
		return storage.NewRedisStore(client), client.Close
	default:
		db := NewDatabaseClient(cfg.DatabaseDSN)
		log.Printf("using sqlite storage at %s", cfg.DatabaseDSN)
		return repository.NewStateRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}
}
