package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
)

// AccessClaims is the identity carried by every access token.
type AccessClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a one-hour HS256 token for the given user.
func GenerateAccessToken(secret string, role, name string, id uuid.UUID) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: role,
		Name: name,
		ID:   id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(secret, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
