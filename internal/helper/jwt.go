package helper

import (
	"fmt"
	"time"

	"NovedadesAPI/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims mirrors what the external auth service signs: the subject id
// plus a role. This core only verifies; it never issues tokens in
// production paths.
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func ParseJWT(secret, tokenString string) (*model.AuthUser, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return &model.AuthUser{ID: claims.Subject, Role: claims.Role}, nil
}

// GenerateJWT exists for the auth collaborator's test doubles.
func GenerateJWT(secret, userID, role string, exp time.Duration) (string, error) {
	claims := JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "NovedadesAPI",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}
