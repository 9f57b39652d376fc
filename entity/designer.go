package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	DesignerStatusActive   = "active"
	DesignerStatusInactive = "inactive"
	DesignerStatusDeleted  = "deleted"
)

type Designer struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:text;not null"`
	Status       string     `json:"status" gorm:"type:varchar(20);not null;default:active"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"not null;autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Designer) TableName() string {
	return "designer"
}
