package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/infra"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/repository"
	"gorm.io/gorm"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Provider   *provider.Provider
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository, provider *provider.Provider) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	if provider == nil {
		panic("Failed to initialize Provider")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Provider:   provider,
	}
}

// currentDesigner resolves the authenticated identity injected by the
// auth middleware to an active designer record.
func (ctrl *Controller) currentDesigner(c *gin.Context) (*entity.Designer, error) {
	username := c.GetString("username")
	if username == "" {
		return nil, errors.New("username not found in context")
	}
	designer, err := ctrl.Repository.DesignerRepo.GetActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, provider.ErrNotFound
		}
		return nil, err
	}
	return designer, nil
}
