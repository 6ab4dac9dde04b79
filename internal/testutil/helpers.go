package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"checklist.com/daily-checklist/internal/storage"
	model "checklist.com/daily-checklist/pkg/models"
)

// NewTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every query on the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.StateRecord{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// Clock is a settable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// At returns the given wall-clock time on 2024-01-15 in UTC.
func At(hour, minute int) time.Time {
	return time.Date(2024, time.January, 15, hour, minute, 0, 0, time.UTC)
}

// StallingStore is an in-memory BlobStore whose Set waits until Release is
// called or the write context expires.
type StallingStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	writes  int
	release chan struct{}
	once    sync.Once
}

func NewStallingStore() *StallingStore {
	return &StallingStore{
		values:  make(map[string][]byte),
		release: make(chan struct{}),
	}
}

func (s *StallingStore) Release() {
	s.once.Do(func() { close(s.release) })
}

// Writes returns how many Set calls have started.
func (s *StallingStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *StallingStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return v, nil
}

func (s *StallingStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()

	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *StallingStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
