// Package blobrepo stores the JSON documents of the application state in a
// single key/value table.
package blobrepo

import (
	"time"

	"restaurant/internal/core/ports"

	"gorm.io/datatypes"
)

// BlobDTO is one persisted structure.
type BlobDTO struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralised default.
func (BlobDTO) TableName() string {
	return "state_blobs"
}

func fromDomain(key ports.Key, blob []byte) BlobDTO {
	return BlobDTO{Key: string(key), Value: datatypes.JSON(blob)}
}
