package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller"
)

type Middlewares struct {
	CORSMiddleware    gin.HandlerFunc
	AuthMiddleware    gin.HandlerFunc
	RefreshMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	auth := AuthMiddleware(ctrl.Config.EnvConfig)
	refresh := RefreshMiddleware(ctrl.Config.EnvConfig)

	return &Middlewares{
		CORSMiddleware:    cors,
		AuthMiddleware:    auth,
		RefreshMiddleware: refresh,
	}, nil
}
