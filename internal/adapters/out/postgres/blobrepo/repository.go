package blobrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBlobRepository implements ports.BlobStorage on a postgres table.
type GormBlobRepository struct {
	db *gorm.DB
}

var _ ports.BlobStorage = (*GormBlobRepository)(nil)

func NewGormBlobRepository(db *gorm.DB) *GormBlobRepository {
	return &GormBlobRepository{db: db}
}

// Load returns the document stored under key.
func (r *GormBlobRepository) Load(ctx context.Context, key ports.Key) ([]byte, bool, error) {
	var dto BlobDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", string(key)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(dto.Value), true, nil
}

// Save inserts or replaces the document stored under key.
func (r *GormBlobRepository) Save(ctx context.Context, key ports.Key, blob []byte) error {
	dto := fromDomain(key, blob)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}
