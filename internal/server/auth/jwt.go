// Package auth issues and verifies the signed, time-limited tokens that
// identify a user for one session. Tokens are HS256 JWTs signed with the
// user's current token secret, so rotating that secret revokes every token
// issued before the rotation without any server-side token registry.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the identified user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// SecretLookup resolves the current signing secret for the claimed user.
// It is called during verification so that the check always runs against
// the secret stored now, not the one the token was minted with.
type SecretLookup func(userID string) ([]byte, error)

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken parses tokenString without trusting its claims, resolves
// the claimed user's current secret via lookup, and verifies signature and
// expiry. It returns the authenticated user id only on full success.
func GetUserIDFromToken(tokenString string, lookup SecretLookup) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		if claims.UserID == "" {
			return nil, common.ErrInvalidToken
		}
		return lookup(claims.UserID)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
