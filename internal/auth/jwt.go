package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionMaker signs and verifies the HS256 tokens clients send back in the
// X-WP-Nonce or Authorization header.
type SessionMaker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionMaker(secret string, ttl time.Duration) *SessionMaker {
	return &SessionMaker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *SessionMaker) Issue(userID int64, email string) (string, *UserClaims, error) {
	claims, err := NewUserClaims(userID, email, m.now(), m.ttl)
	if err != nil {
		return "", nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

func (m *SessionMaker) Verify(tokenStr string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
