package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "simpledashboard"

// UserClaims identify the user a session token was issued to. The session id
// doubles as the token id.
type UserClaims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewUserClaims(userID int64, email string, issuedAt time.Time, duration time.Duration) (*UserClaims, error) {
	sid, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	c := &UserClaims{UserID: userID, Email: email, SessionID: sid.String()}
	c.ID = c.SessionID
	c.Issuer = tokenIssuer
	c.Subject = strconv.FormatInt(userID, 10)
	c.IssuedAt = jwt.NewNumericDate(issuedAt)
	c.NotBefore = c.IssuedAt
	c.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(duration))
	return c, nil
}

// ExpiresAtTime returns the expiry, or the zero time when none is set.
func (c *UserClaims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
