package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-design-service/entity"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// DesignerRepository handles all database operations for the Designer entity.
type DesignerRepository struct {
	db *gorm.DB
}

func NewDesignerRepository(db *gorm.DB) *DesignerRepository {
	return &DesignerRepository{
		db: db,
	}
}

func (r *DesignerRepository) Create(designer *entity.Designer) error {
	if designer == nil {
		return errors.New("designer cannot be nil")
	}
	if designer.ID == uuid.Nil {
		designer.ID = uuid.New()
	}
	return r.db.Create(designer).Error
}

// GetByUsername returns the designer regardless of status, excluding
// soft-deleted records.
func (r *DesignerRepository) GetByUsername(username string) (*entity.Designer, error) {
	var designer entity.Designer
	err := r.db.Where("username = ? AND deleted_at IS NULL", username).First(&designer).Error
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

// GetActiveByUsername returns the designer only when its status is active.
func (r *DesignerRepository) GetActiveByUsername(username string) (*entity.Designer, error) {
	var designer entity.Designer
	err := r.db.Where("username = ? AND status = ? AND deleted_at IS NULL",
		username, entity.DesignerStatusActive).First(&designer).Error
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

func (r *DesignerRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Designer{}).
		Where("username = ? AND deleted_at IS NULL", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DesignerRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Designer{}).
		Where("email = ? AND deleted_at IS NULL", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DesignerRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&entity.Designer{}).Where("id = ?", id).
		Update("status", status).Error
}
