package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, unsigned, or tampered tokens.
var ErrInvalidToken = errors.New("invalid access token")

type Claims struct {
	jwt.RegisteredClaims
}

// Signer mints the opaque bearer tokens handed out at sign-in. Possession of
// the signing secret is what makes tokens unforgeable; expiry and logout are
// still decided against the stored session row.
type Signer struct {
	Secret []byte
	Issuer string
}

// Issue returns a signed token bound to the subject and validity window.
func (s *Signer) Issue(subjectUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   subjectUUID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.Secret)
}

// ParseSubject extracts the subject uuid without a database round trip.
// A failed signature or structure check yields ErrInvalidToken. The embedded
// expiry is deliberately not validated here: the stored session row is the
// source of truth for expiry, so an expired-but-authentic token still yields
// its subject.
func (s *Signer) ParseSubject(tokenStr string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
