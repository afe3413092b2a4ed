package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures, distinguished so middleware can map them to
// status codes.
var (
	ErrBadSignature = errors.New("token: bad signature")
	ErrExpired      = errors.New("token: expired")
	ErrMalformed    = errors.New("token: malformed")
)

type Claims struct {
	AccountID string `json:"accountId"`
	jwtlib.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a single shared secret.
// Issue and Verify are pure over their inputs plus the clock; nothing
// here touches storage.
type Codec struct {
	secret []byte
}

func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: empty secret")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue mints a token for the account. A ttl <= 0 produces a token
// without an expiry claim. Every token carries a fresh jti so two
// tokens minted for the same account within the same second still
// differ.
func (c *Codec) Issue(accountID string, ttl time.Duration) (string, error) {
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwtlib.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwtlib.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
