package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller/dto"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/utils"
)

const designerProfileCacheTTL = 5 * time.Minute

func (ctrl *Controller) GetMyProfile(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.GetString("username")

	cacheKey := "designer:profile:" + username
	var cached dto.DesignerProfileDTO
	if err := ctrl.Infra.Redis.Get(ctx, cacheKey, &cached); err == nil {
		utils.JSON200(c, cached)
		return
	}

	designer, err := ctrl.Provider.AuthService.Profile(username)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Designer] Designer '%s' not found", username)
			utils.JSON404(c, "Designer not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Designer] Failed to load profile for username '%s'", username)
		utils.JSON500(c, "Internal server error")
		return
	}

	profile := dto.DesignerProfileDTO{
		Username: designer.Username,
		Email:    designer.Email,
		Status:   designer.Status,
	}
	if err := ctrl.Infra.Redis.Set(ctx, cacheKey, profile, designerProfileCacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Designer] Failed to cache profile for username '%s': %v", username, err)
	}

	utils.JSON200(c, profile)
}
