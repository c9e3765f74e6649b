package security

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	jwtSecret   []byte
	tokenExpiry = 72 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// InitializeTokens sets up the JWT signing key and token lifetime from the
// environment. Call once at startup.
func InitializeTokens() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("Warning: JWT_SECRET not set, using a default key. This is NOT secure for production!")
		secret = "default-key-for-development-only"
	}
	jwtSecret = []byte(secret)

	if expire := os.Getenv("JWT_EXPIRE"); expire != "" {
		d, err := time.ParseDuration(expire)
		if err != nil {
			log.Printf("Warning: invalid JWT_EXPIRE %q, keeping default %s", expire, tokenExpiry)
		} else {
			tokenExpiry = d
		}
	}
}

// GenerateToken issues a signed bearer token for the given user id.
func GenerateToken(userID string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("token signing key not initialized")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies a bearer token and returns the user id it was issued for.
func ParseToken(tokenString string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("token signing key not initialized")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
