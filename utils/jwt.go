package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tnqbao/gau-design-service/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// GenerateAccessToken issues a short-lived access token bound to the username.
func GenerateAccessToken(username string, cfg *config.EnvConfig) (string, error) {
	return generateToken(username, TokenTypeAccess, time.Duration(cfg.JWT.AccessExpire)*time.Second, cfg)
}

// GenerateRefreshToken issues a longer-lived refresh token bound to the username.
func GenerateRefreshToken(username string, cfg *config.EnvConfig) (string, error) {
	return generateToken(username, TokenTypeRefresh, time.Duration(cfg.JWT.RefreshExpire)*time.Second, cfg)
}

func generateToken(username, tokenType string, expire time.Duration, cfg *config.EnvConfig) (string, error) {
	if cfg.JWT.SecretKey == "" {
		return "", errors.New("jwt secret key is not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"username":   username,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(expire).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.SecretKey))
}

func ParseToken(tokenString string, cfg *config.EnvConfig) (*jwt.Token, error) {
	secret := []byte(cfg.JWT.SecretKey)
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

// ExtractToken pulls the bearer token from the cookie or Authorization header.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// UsernameFromClaims validates the token_type claim and returns the username claim.
func UsernameFromClaims(claims jwt.MapClaims, wantType string) (string, error) {
	tokenType, ok := claims["token_type"].(string)
	if !ok || tokenType != wantType {
		return "", errors.New("invalid token type")
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("invalid username claim")
	}
	return username, nil
}
