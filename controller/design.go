package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller/dto"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/repository"
	"github.com/tnqbao/gau-design-service/utils"
)

// assetLinkTTL bounds how long retrieval URLs embedded in a design
// detail response stay valid.
const assetLinkTTL = time.Hour

func (ctrl *Controller) ListDesigns(c *gin.Context) {
	ctx := c.Request.Context()

	designer, err := ctrl.currentDesigner(c)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSON404(c, "Designer not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to resolve designer")
		utils.JSON500(c, "Internal server error")
		return
	}

	designs, err := ctrl.Provider.DesignService.List(designer.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to list designs for designer %s", designer.ID)
		utils.JSON500(c, "Internal server error")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Design] %d designs retrieved for designer %s", len(designs), designer.ID)

	response := make([]dto.DesignResponseDTO, 0, len(designs))
	for _, design := range designs {
		response = append(response, dto.NewDesignResponse(design))
	}
	utils.JSON200(c, response)
}

// GetDesign returns one design with its assets, each carrying a
// short-lived retrieval URL.
func (ctrl *Controller) GetDesign(c *gin.Context) {
	ctx := c.Request.Context()

	designer, err := ctrl.currentDesigner(c)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSON404(c, "Designer not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to resolve designer")
		utils.JSON500(c, "Internal server error")
		return
	}

	designKey := c.Param("design_key")
	design, err := ctrl.Repository.DesignRepo.GetByKeyAndDesigner(designKey, designer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			utils.JSON404(c, "Design not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to resolve design %s", designKey)
		utils.JSON500(c, "Internal server error")
		return
	}

	assets, err := ctrl.Repository.DesignAssetRepo.ListByDesign(design.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to list assets for design %s", designKey)
		utils.JSON500(c, "Internal server error")
		return
	}

	response := dto.DesignDetailResponseDTO{
		DesignResponseDTO: dto.NewDesignResponse(design),
		Assets:            make([]dto.AssetResponseDTO, 0, len(assets)),
	}
	for _, asset := range assets {
		url, err := ctrl.Infra.Minio.PresignGet(ctx, asset.FilePath, assetLinkTTL)
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to presign asset %s", asset.FilePath)
			utils.JSON500(c, "Internal server error")
			return
		}
		response.Assets = append(response.Assets, dto.NewAssetResponse(asset, url))
	}

	utils.JSON200(c, response)
}

func (ctrl *Controller) CreateDesign(c *gin.Context) {
	ctx := c.Request.Context()

	designer, err := ctrl.currentDesigner(c)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSON404(c, "Designer not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Failed to resolve designer")
		utils.JSON500(c, "Internal server error")
		return
	}

	var req dto.CreateDesignRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Design] Failed to bind create request: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	design, err := ctrl.Provider.DesignService.Create(designer.ID, req.Name, req.Description)
	if err != nil {
		var validationErr *provider.ValidationError
		var conflictErr *provider.ConflictError
		switch {
		case errors.As(err, &validationErr):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Design] Create failed for designer %s: %s", designer.ID, validationErr.Message)
			utils.JSON400(c, validationErr.Message)
		case errors.As(err, &conflictErr):
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Create failed for designer %s: key collision", designer.ID)
			utils.JSON400(c, conflictErr.Message)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Design] Create failed for designer %s", designer.ID)
			utils.JSON500(c, "Internal server error")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Design] Design '%s' created with key %s for designer %s", design.Name, design.DesignKey, designer.ID)

	utils.JSON201(c, dto.NewDesignResponse(design))
}
