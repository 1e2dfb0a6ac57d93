package models

import "time"

// KVEntry backs the persisted key-value store (session flags, token,
// serialized user, KYC status).
type KVEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
