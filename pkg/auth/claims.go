package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Username string
	Role     enums.Role
}

// AccessTokenClaims represents the typed JWT issued to staff accounts.
type AccessTokenClaims struct {
	Role enums.Role `json:"role"`
	jwt.RegisteredClaims
}

// Username returns the subject the token was minted for.
func (c *AccessTokenClaims) Username() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
