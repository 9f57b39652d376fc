package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-design-service/entity"
	"gorm.io/gorm"
)

// DesignRepository handles all database operations for the Design entity.
type DesignRepository struct {
	db *gorm.DB
}

func NewDesignRepository(db *gorm.DB) *DesignRepository {
	return &DesignRepository{
		db: db,
	}
}

func (r *DesignRepository) Create(design *entity.Design) error {
	if design == nil {
		return errors.New("design cannot be nil")
	}
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	return r.db.Create(design).Error
}

// ListByDesigner returns all non-deleted designs owned by the designer.
// No ordering is applied; listing order is not part of the contract.
func (r *DesignRepository) ListByDesigner(designerID uuid.UUID) ([]*entity.Design, error) {
	var designs []*entity.Design
	err := r.db.Where("designer_id = ? AND deleted_at IS NULL", designerID).Find(&designs).Error
	if err != nil {
		return nil, err
	}
	return designs, nil
}

// GetByKeyAndDesigner resolves a design key scoped to its owner. A key
// owned by someone else behaves exactly like a nonexistent key.
func (r *DesignRepository) GetByKeyAndDesigner(designKey string, designerID uuid.UUID) (*entity.Design, error) {
	var design entity.Design
	err := r.db.Where("design_key = ? AND designer_id = ? AND deleted_at IS NULL",
		designKey, designerID).First(&design).Error
	if err != nil {
		return nil, err
	}
	return &design, nil
}
