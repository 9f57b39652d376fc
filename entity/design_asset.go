package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DesignAsset struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	DesignID   uuid.UUID      `json:"design_id" gorm:"type:uuid;not null;index"`
	DesignerID uuid.UUID      `json:"designer_id" gorm:"type:uuid;not null;index"`
	FileName   string         `json:"file_name" gorm:"type:varchar(255);not null"`
	FilePath   string         `json:"file_path" gorm:"type:text;uniqueIndex;not null"`
	MimeType   string         `json:"mime_type" gorm:"type:varchar(255);not null"`
	Metadata   datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	DeletedAt  *time.Time     `json:"deleted_at,omitempty" gorm:"index"`

	Design *Design `json:"design,omitempty" gorm:"foreignKey:DesignID"`
}

func (DesignAsset) TableName() string {
	return "design_asset"
}
