package models

import "time"

// KVEntry is one key of the on-device state store
type KVEntry struct {
	Key       string     `gorm:"primaryKey;size:191"`
	Value     string     `gorm:"type:text"`
	ExpiresAt *time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName pins the table name so every driver shares the same schema
func (KVEntry) TableName() string {
	return "kv_entries"
}
