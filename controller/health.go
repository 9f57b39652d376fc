package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-design-service/utils"
)

func (ctrl *Controller) Index(c *gin.Context) {
	utils.JSON200(c, gin.H{"message": "Gau Design Service API"})
}

// HealthCheck reports per-dependency status. The endpoint itself always
// answers 200; orchestration reads the component fields.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := gin.H{
		"database": "healthy",
		"cache":    "healthy",
		"storage":  "healthy",
	}
	status := "healthy"

	if err := ctrl.Infra.Postgres.Ping(); err != nil {
		components["database"] = "unreachable"
		status = "degraded"
	}
	if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
		components["cache"] = "unreachable"
		status = "degraded"
	}
	if err := ctrl.Infra.Minio.Health(ctx); err != nil {
		components["storage"] = "unreachable"
		status = "degraded"
	}

	utils.JSON200(c, gin.H{
		"status":     status,
		"components": components,
	})
}
