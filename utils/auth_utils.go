package utils

import (
	"time"

	"github.com/clean-alert/api-go/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// GenerateAccessToken issues a short-lived signed token carrying the principal
// id and role. Expiry is enforced on every protected route.
func GenerateAccessToken(userID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"typ":     tokenTypeAccess,
		"exp":     time.Now().Add(config.AccessTokenTTL).Unix(),
	})
	return token.SignedString(config.JWTSecret())
}

func GenerateRefreshToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"typ":     tokenTypeRefresh,
		"exp":     time.Now().Add(config.RefreshTokenTTL).Unix(),
	})
	return token.SignedString(config.JWTSecret())
}

// ParseAccessToken validates signature and expiry and returns the claims.
// Only access tokens pass: refresh tokens share the signing secret but carry
// typ=refresh and no role, and must never work as bearer credentials.
func ParseAccessToken(tokenString string) (*UserClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeAccess {
		return nil, jwt.NewValidationError("not an access token", jwt.ValidationErrorClaimsInvalid)
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, jwt.NewValidationError("missing user_id claim", jwt.ValidationErrorClaimsInvalid)
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, jwt.NewValidationError("missing role claim", jwt.ValidationErrorClaimsInvalid)
	}

	return &UserClaims{UserID: uint(userID), Role: role}, nil
}
