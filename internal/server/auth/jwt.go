// Package auth implements token signing/verification and password hashing
// for the to-do service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mlukash/todoshare/internal/common"
)

// Claims embeds the registered JWT claims and adds the application ones.
// UserID is always present; the profile fields are set on login tokens so the
// client can render the account without an extra round trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"userId"`
	Email      string `json:"email,omitempty"`
	UserName   string `json:"userName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	Color      string `json:"color,omitempty"`
}

// GenerateToken signs claims with HS256, setting the expiry to now+validityDuration.
func GenerateToken(claims Claims, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validityDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns its
// claims. Malformed, forged and expired tokens all yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
