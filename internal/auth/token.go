package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a session token fails signature or
// expiry verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims binds an account identifier to the standard JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// IssueToken mints a signed bearer token for the account, valid for ttl.
func IssueToken(accountID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID: accountID,
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the account identifier it was issued for. Expiry is the only
// deauthorization mechanism; there is no revocation list.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.AccountID == "" {
		return "", ErrInvalidToken
	}
	return claims.AccountID, nil
}
