package types

import "github.com/golang-jwt/jwt/v5"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeAdmin   = "admin"
)

// Claims is the JWT payload for both user and admin tokens.
type Claims struct {
	UserID    uint   `json:"user_id,omitempty"`
	TokenType string `json:"type"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}
