package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry Postgres üzerindeki anahtar-değer deposunun satırı
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:100"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
