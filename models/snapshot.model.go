package models

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot is one persisted collection, stored as a JSON blob under a
// fixed key. Each key is written independently; there is no transaction
// spanning more than one snapshot.
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
