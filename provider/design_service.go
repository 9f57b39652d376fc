package provider

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/utils"
	"gorm.io/gorm"
)

// designKeyAttempts bounds retries when a freshly generated design key
// collides with an existing one.
const designKeyAttempts = 3

// DesignStore is the subset of the design repository the design and
// upload services depend on.
type DesignStore interface {
	Create(design *entity.Design) error
	ListByDesigner(designerID uuid.UUID) ([]*entity.Design, error)
	GetByKeyAndDesigner(designKey string, designerID uuid.UUID) (*entity.Design, error)
}

type DesignService struct {
	designs DesignStore
}

func NewDesignService(designs DesignStore) *DesignService {
	return &DesignService{
		designs: designs,
	}
}

// List returns all designs owned by the designer, in no particular order.
func (s *DesignService) List(designerID uuid.UUID) ([]*entity.Design, error) {
	return s.designs.ListByDesigner(designerID)
}

// Create persists a new design owned by the designer, generating its
// external key. Key collisions are retried before surfacing a conflict.
func (s *DesignService) Create(designerID uuid.UUID, name, description string) (*entity.Design, error) {
	if name == "" {
		return nil, NewValidationError("design name is required")
	}

	for attempt := 0; attempt < designKeyAttempts; attempt++ {
		key, err := utils.GenerateDesignKey(entity.DesignKeyLength)
		if err != nil {
			return nil, err
		}
		design := &entity.Design{
			DesignerID:  designerID,
			DesignKey:   key,
			Name:        name,
			Description: description,
		}
		err = s.designs.Create(design)
		if err == nil {
			return design, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, NewConflictError("could not allocate a unique design key")
}
