package dto

import (
	"time"

	"github.com/tnqbao/gau-design-service/entity"
)

type CreateDesignRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DesignResponseDTO struct {
	DesignKey   string    `json:"design_key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewDesignResponse(design *entity.Design) DesignResponseDTO {
	return DesignResponseDTO{
		DesignKey:   design.DesignKey,
		Name:        design.Name,
		Description: design.Description,
		CreatedAt:   design.CreatedAt,
		UpdatedAt:   design.UpdatedAt,
	}
}

type DesignDetailResponseDTO struct {
	DesignResponseDTO
	Assets []AssetResponseDTO `json:"assets"`
}

type AssetResponseDTO struct {
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	URL       string    `json:"url"`
}

func NewAssetResponse(asset *entity.DesignAsset, url string) AssetResponseDTO {
	return AssetResponseDTO{
		FileName:  asset.FileName,
		MimeType:  asset.MimeType,
		CreatedAt: asset.CreatedAt,
		URL:       url,
	}
}
