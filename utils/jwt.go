package utils

import (
	"errors"
	"time"

	"crownart/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is the fixed lifetime of every issued credential token.
const TokenTTL = time.Hour

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// IssueToken signs a token embedding the caller-supplied payload verbatim.
// The payload is not checked against a stored user; "exp" and "iat" are
// always overwritten with the server clock.
func IssueToken(payload map[string]interface{}, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// EmailFromToken extracts the "email" claim from a valid token string.
func EmailFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("token does not contain a valid 'email' claim")
	}

	return email, nil
}
