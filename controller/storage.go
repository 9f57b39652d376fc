package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller/dto"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/utils"
)

// UploadAsset accepts one multipart file bound to a design key and runs
// it through the upload pipeline.
func (ctrl *Controller) UploadAsset(c *gin.Context) {
	ctx := c.Request.Context()

	designer, err := ctrl.currentDesigner(c)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSON404(c, "Designer not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Failed to resolve designer")
		utils.JSON500(c, "Internal server error")
		return
	}

	designKey := c.Param("design_key")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Storage] No file provided for design key %s", designKey)
		utils.JSON400(c, "No file provided")
		return
	}
	if fileHeader.Filename == "" {
		utils.JSON400(c, "No selected file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Failed to open uploaded file for design key %s", designKey)
		utils.JSON500(c, "Internal server error")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Failed to read uploaded file for design key %s", designKey)
		utils.JSON500(c, "Internal server error")
		return
	}

	result, err := ctrl.Provider.UploadService.Upload(ctx, designer, designKey, content, fileHeader.Filename)
	if err != nil {
		var validationErr *provider.ValidationError
		var storageErr *provider.StorageError
		switch {
		case errors.As(err, &validationErr):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Storage] Upload rejected for design key %s: %s", designKey, validationErr.Message)
			utils.JSON400(c, validationErr.Message)
		case errors.Is(err, provider.ErrNotFound):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Storage] Upload failed: design key %s not found for designer %s", designKey, designer.ID)
			utils.JSON404(c, "Design not found")
		case errors.As(err, &storageErr):
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Upload failed for design key %s", designKey)
			utils.JSON500(c, "Internal server error")
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Upload failed for design key %s", designKey)
			utils.JSON500(c, "Internal server error")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Storage] File '%s' uploaded successfully for design key %s", fileHeader.Filename, designKey)

	utils.JSON200(c, gin.H{
		"url":   result.URL,
		"asset": dto.NewAssetResponse(result.Asset, result.URL),
	})
}
