package mockapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/models"
)

const tokenIssuer = "fundvest-api"

// SignToken mints the HMAC-SHA256 session token handed out on OTP
// verification.
func SignToken(user models.User, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"email": user.Email,
		"iss":   tokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenUser holds the identity claims recovered from a session token.
type TokenUser struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// ParseToken validates a session token and extracts the identity
// claims. Expired, malformed or foreign-signed tokens are rejected as
// unauthorized.
func ParseToken(tokenString, secret string) (TokenUser, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenUser{}, apperr.Unauthorized("invalid session token: %v", err)
	}

	user := TokenUser{}
	if v, ok := claims["sub"].(string); ok {
		user.ID = v
	}
	if v, ok := claims["name"].(string); ok {
		user.Name = v
	}
	if v, ok := claims["phone"].(string); ok {
		user.Phone = v
	}
	if v, ok := claims["email"].(string); ok {
		user.Email = v
	}
	return user, nil
}
