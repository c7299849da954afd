package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that does not carry a
// valid, unexpired claim for a user.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of a session token. The registered Subject holds the
// user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// Authority issues and verifies the signed bearer tokens that bind a request
// to a user account. Tokens are HS256-signed with a server-held secret and
// expire a fixed duration after issuance; there is no revocation list, so a
// compromised secret must be rotated.
type Authority struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthority(secret []byte, ttl time.Duration) *Authority {
	return &Authority{secret: secret, ttl: ttl}
}

// Issue signs a token asserting userID, expiring ttl from now.
func (a *Authority) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	})
	return token.SignedString(a.secret)
}

// Verify checks the signature and expiry of tokenString and returns the user
// ID it asserts. Malformed, tampered and expired tokens all fail.
func (a *Authority) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
