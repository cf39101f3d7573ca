package auth

import (
	"time"

	"vaulterp-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 4 * time.Hour

type JWTCustomClaims struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	UsertypeID uint   `json:"usertype_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User) (string, error) {
	claims := &JWTCustomClaims{
		UserID:     user.ID,
		Email:      user.Email,
		UsertypeID: user.UsertypeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
