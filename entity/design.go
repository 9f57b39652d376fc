package entity

import (
	"time"

	"github.com/google/uuid"
)

// DesignKeyLength is the length of the external-facing design key.
const DesignKeyLength = 8

type Design struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	DesignerID  uuid.UUID  `json:"designer_id" gorm:"type:uuid;not null;index"`
	DesignKey   string     `json:"design_key" gorm:"type:varchar(8);uniqueIndex;not null"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null;autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Designer *Designer `json:"designer,omitempty" gorm:"foreignKey:DesignerID"`
}

func (Design) TableName() string {
	return "design"
}
