package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/utils"
)

// AuthMiddleware guards routes behind a valid access token and injects
// the username claim into the request context.
func AuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return tokenMiddleware(config, utils.TokenTypeAccess)
}

// RefreshMiddleware guards the token refresh route behind a valid
// refresh token.
func RefreshMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return tokenMiddleware(config, utils.TokenTypeRefresh)
}

func tokenMiddleware(config *config.EnvConfig, wantType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			c.Abort()
			return
		}

		parsedToken, err := utils.ParseToken(tokenStr, config)
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		username, err := utils.UsernameFromClaims(claims, wantType)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		c.Set("username", username)

		c.Next()
	}
}
