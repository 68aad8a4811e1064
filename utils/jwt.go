package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"deadline/models"
)

// GenerateSessionJWT generates the signed session token persisted alongside
// the user projection. Claims carry the account ID and role only.
func GenerateSessionJWT(userID string, role models.UserRole, secret []byte, expiresInHours int) (string, error) {
	expiresAt := time.Now().Add(time.Duration(expiresInHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionJWT validates a session token and returns its account ID and
// role claims
func ParseSessionJWT(tokenString string, secret []byte) (string, models.UserRole, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("invalid token: sub not found")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", fmt.Errorf("invalid token: role not found")
	}
	role := models.UserRole(roleStr)
	if !models.ValidRole(role) {
		return "", "", fmt.Errorf("invalid token: unknown role %q", roleStr)
	}

	return userID, role, nil
}
