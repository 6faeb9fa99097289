package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestPrincipalCan(t *testing.T) {
	tests := []struct {
		name  string
		user  model.User
		cap   string
		allow bool
	}{
		{"employee views self", model.User{Roles: []string{RoleEmployee}}, CapViewSelf, true},
		{"employee cannot view team", model.User{Roles: []string{RoleEmployee}}, CapViewTeam, false},
		{"manager approves leave", model.User{Roles: []string{RoleManager}}, CapApproveLeave, true},
		{"manager cannot manage options", model.User{Roles: []string{RoleManager}}, CapManageOptions, false},
		{"administrator role name", model.User{Roles: []string{RoleAdministrator}}, RoleAdministrator, true},
		{"direct grant", model.User{Capabilities: []string{CapViewEntries}}, CapViewEntries, true},
		{"unknown role", model.User{Roles: []string{"subscriber"}}, CapViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allow, NewPrincipal(tt.user).Can(tt.cap))
		})
	}
}

func TestPrincipalCanAny(t *testing.T) {
	p := NewPrincipal(model.User{Capabilities: []string{CapApproveLoan}})
	assert.True(t, p.CanAny(CapApproveLeave, CapApproveLoan))
	assert.False(t, p.CanAny(CapApproveLeave, CapViewTeam))

	var nobody *Principal
	assert.False(t, nobody.Can(CapViewSelf))
}

func TestSessionMaker_RoundTrip(t *testing.T) {
	m := NewSessionMaker(secret, time.Hour)

	token, issued, err := m.Issue(7, "sara@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "sara@example.com", claims.Email)
	assert.Equal(t, issued.SessionID, claims.SessionID)
}

func TestSessionMaker_Expired(t *testing.T) {
	m := NewSessionMaker(secret, time.Minute)
	start := time.Now()
	m.now = func() time.Time { return start }

	token, _, err := m.Issue(7, "sara@example.com")
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionMaker_RejectsForeignTokens(t *testing.T) {
	m := NewSessionMaker(secret, time.Hour)

	other := NewSessionMaker("ffffffffffffffffffffffffffffffff", time.Hour)
	token, _, err := other.Issue(7, "sara@example.com")
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := NewUserClaims(7, "sara@example.com", time.Now(), time.Hour)
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionMaker_RejectsOtherIssuer(t *testing.T) {
	m := NewSessionMaker(secret, time.Hour)

	claims, err := NewUserClaims(7, "sara@example.com", time.Now(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, claims.SessionID, claims.ID)

	claims.Issuer = "someone-else"
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
