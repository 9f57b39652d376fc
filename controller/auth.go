package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller/dto"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/utils"
)

func (ctrl *Controller) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignupRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Failed to bind signup request: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Signup request received for username: %s", req.Username)

	designer, tokens, err := ctrl.Provider.AuthService.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		var validationErr *provider.ValidationError
		var conflictErr *provider.ConflictError
		switch {
		case errors.As(err, &validationErr):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Signup failed: %s", validationErr.Message)
			utils.JSON400(c, validationErr.Message)
		case errors.As(err, &conflictErr):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Signup conflict for username '%s': %s", req.Username, conflictErr.Message)
			utils.JSON400(c, conflictErr.Message)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Signup failed for username '%s'", req.Username)
			utils.JSON500(c, "Internal server error")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Designer '%s' created successfully", designer.Username)

	utils.JSON201(c, gin.H{
		"message":       "Designer created successfully",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Failed to bind login request: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Login request received for username: %s", req.Username)

	tokens, err := ctrl.Provider.AuthService.Login(req.Username, req.Password)
	if err != nil {
		var validationErr *provider.ValidationError
		switch {
		case errors.As(err, &validationErr):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Login failed: %s", validationErr.Message)
			utils.JSON400(c, validationErr.Message)
		case errors.Is(err, provider.ErrInvalidCredentials):
			// Unknown username and wrong password are indistinguishable
			// here to prevent account enumeration.
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Login failed: invalid credentials for username '%s'", req.Username)
			utils.JSON401(c, "Invalid username or password")
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Login failed for username '%s'", req.Username)
			utils.JSON500(c, "Internal server error")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Designer '%s' logged in successfully", req.Username)

	utils.JSON200(c, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (ctrl *Controller) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.GetString("username")

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Token refresh request received for username: %s", username)

	accessToken, err := ctrl.Provider.AuthService.Refresh(username)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrNotFound):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Token refresh failed: designer '%s' not found", username)
			utils.JSON404(c, "Designer not found")
		case errors.Is(err, provider.ErrInactive):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Token refresh failed: designer '%s' is inactive", username)
			utils.JSON403(c, "Designer is inactive")
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Token refresh failed for username '%s'", username)
			utils.JSON500(c, "Internal server error")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Token refreshed successfully for username: %s", username)

	utils.JSON200(c, gin.H{"access_token": accessToken})
}
