package auth

import (
	"errors"
	"time"

	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 72 * time.Hour

// TokenCodec signs session claims into an opaque string and verifies them
// back, using a shared HMAC secret.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a TokenCodec around the shared signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Sign issues a session token embedding the user's identity and email.
func (tc *TokenCodec) Sign(userID, email string) (string, error) {
	claims := &models.SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify decodes a session token. It fails on malformed input, a wrong
// signature, a non-HMAC signing method, or an expired token.
func (tc *TokenCodec) Verify(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
