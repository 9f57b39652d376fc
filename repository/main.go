package repository

import (
	"github.com/tnqbao/gau-design-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	Db *gorm.DB

	DesignerRepo    *DesignerRepository
	DesignRepo      *DesignRepository
	DesignAssetRepo *DesignAssetRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		Db: infra.Postgres.DB,
	}
	if repository.Db == nil {
		panic("database connection is nil")
	}

	repository.DesignerRepo = NewDesignerRepository(repository.Db)
	repository.DesignRepo = NewDesignRepository(repository.Db)
	repository.DesignAssetRepo = NewDesignAssetRepository(repository.Db)

	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
