package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/pkg/types"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed user token of the given type.
var GenerateToken = func(userID uint, tokenType string, isAdmin bool, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID:    userID,
		TokenType: tokenType,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// GenerateAdminToken issues a token for the env-configured admin console.
// It carries no user id; the subject is the admin email.
func GenerateAdminToken(expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		TokenType: types.TokenTypeAdmin,
		IsAdmin:   true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   config.AdminEmail,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie, true
	}
	return "", false
}

// JWTAuthMiddleware validates a Bearer token in the Authorization header or
// the access_token cookie and requires an access-type token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required (header or cookie)"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if claims.TokenType != types.TokenTypeAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Explicitly enforce expiration to avoid lax parser behavior
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuthMiddleware sets claims when a valid access token is present
// and silently continues anonymously otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := extractToken(c); ok {
			if claims, err := ParseToken(tokenStr); err == nil &&
				claims.TokenType == types.TokenTypeAccess &&
				(claims.ExpiresAt == nil || time.Now().Before(claims.ExpiresAt.Time)) {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}

// AdminAuthMiddleware requires an admin token matching the configured
// admin subject.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AdminEmail == "" || config.AdminPassword == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
			c.Abort()
			return
		}

		tokenStr, ok := extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil || claims.TokenType != types.TokenTypeAdmin || claims.Subject != config.AdminEmail {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			c.Abort()
			return
		}

		c.Set("adminSubject", claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 for anonymous callers.
func UserID(c *gin.Context) uint {
	value, exists := c.Get("claims")
	if !exists {
		return 0
	}
	claims, ok := value.(*types.Claims)
	if !ok {
		return 0
	}
	return claims.UserID
}
