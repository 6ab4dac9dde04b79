package model

import "time"

// StateRecord is the SQLite row holding one serialized blob.
type StateRecord struct {
	Key       string    `gorm:"column:state_key;primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
