package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL is the fixed lifetime of an access token. There is no
// refresh mechanism; clients re-authenticate after expiry.
const AccessTokenTTL = 15 * time.Minute

var (
	// ErrMissingSecret is returned when a codec is constructed without a
	// signing secret.
	ErrMissingSecret = errors.New("token: signing secret is not set")

	// ErrInvalidToken is returned for any token that fails verification:
	// bad signature, expired, malformed, or signed with the wrong method.
	ErrInvalidToken = errors.New("token: invalid token")
)

// Claims is the signed payload embedded in an access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// Codec signs and verifies access tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Codec{secret: []byte(secret), ttl: AccessTokenTTL, now: time.Now}, nil
}

// Sign issues a token for the given identity, valid for AccessTokenTTL.
func (c *Codec) Sign(userID uuid.UUID, email, role string) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token, returning its claims.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
