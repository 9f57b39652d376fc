package provider

import (
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/infra"
	"github.com/tnqbao/gau-design-service/repository"
)

type Provider struct {
	AuthService   *AuthService
	DesignService *DesignService
	UploadService *UploadService
}

var providerInstance *Provider

func InitProvider(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Provider {
	if providerInstance != nil {
		return providerInstance
	}

	providerInstance = &Provider{
		AuthService:   NewAuthService(repo.DesignerRepo, cfg.EnvConfig),
		DesignService: NewDesignService(repo.DesignRepo),
		UploadService: NewUploadService(
			repo.DesignRepo,
			repo.DesignAssetRepo,
			infra.Minio,
			infra.Produce.AssetService,
			cfg.EnvConfig,
		),
	}

	return providerInstance
}

func GetProvider() *Provider {
	if providerInstance == nil {
		panic("Provider not initialized. Call InitProvider() first.")
	}
	return providerInstance
}
