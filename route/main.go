package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/controller"
	middlewares "github.com/tnqbao/gau-design-service/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/", ctrl.Index)
	r.GET("/health", ctrl.HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", ctrl.Signup)
		authRoutes.POST("/login", ctrl.Login)
		authRoutes.POST("/refresh", middles.RefreshMiddleware, ctrl.Refresh)
	}

	designerRoutes := r.Group("/designer")
	{
		designerRoutes.Use(middles.AuthMiddleware)
		designerRoutes.GET("/my", ctrl.GetMyProfile)
	}

	designRoutes := r.Group("/designs")
	{
		designRoutes.Use(middles.AuthMiddleware)
		designRoutes.GET("", ctrl.ListDesigns)
		designRoutes.POST("", ctrl.CreateDesign)
		designRoutes.GET("/:design_key", ctrl.GetDesign)
	}

	storageRoutes := r.Group("/storage")
	{
		storageRoutes.Use(middles.AuthMiddleware)
		storageRoutes.POST("/:design_key/upload", ctrl.UploadAsset)
	}

	return r
}
