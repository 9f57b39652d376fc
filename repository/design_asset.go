package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-design-service/entity"
	"gorm.io/gorm"
)

// DesignAssetRepository handles all database operations for the
// DesignAsset entity. Asset bytes live in object storage; only metadata
// is recorded here.
type DesignAssetRepository struct {
	db *gorm.DB
}

func NewDesignAssetRepository(db *gorm.DB) *DesignAssetRepository {
	return &DesignAssetRepository{
		db: db,
	}
}

func (r *DesignAssetRepository) Create(asset *entity.DesignAsset) error {
	if asset == nil {
		return errors.New("design asset cannot be nil")
	}
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	return r.db.Create(asset).Error
}

func (r *DesignAssetRepository) ListByDesign(designID uuid.UUID) ([]*entity.DesignAsset, error) {
	var assets []*entity.DesignAsset
	err := r.db.Where("design_id = ? AND deleted_at IS NULL", designID).Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}
