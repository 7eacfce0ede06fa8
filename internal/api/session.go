package api

import (
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"roombook/internal/domain"
)

// ASP.NET-style claim URIs the backend packs into its tokens.
const (
	claimEmail  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimRole   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	claimNameID = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

// UserInfo is what this client needs to know about the signed-in user.
type UserInfo struct {
	ID    string
	Email string
	Role  domain.Role
}

// Session holds the access token and decoded identity for one signed-in
// user. It is passed explicitly to the gateway; there is no package-level
// token anywhere.
type Session struct {
	mu       sync.RWMutex
	token    string
	user     *UserInfo
	onLogout func()
}

// NewSession builds a session, optionally pre-seeded with a token (e.g.
// from the ROOMBOOK_ACCESS_TOKEN env var). A malformed seed token is
// ignored rather than fatal: the user just has to log in again.
func NewSession(token string) *Session {
	s := &Session{}
	if token != "" {
		_ = s.SetToken(token)
	}
	return s
}

// OnLogout registers the hook run when the session is invalidated,
// either explicitly or by a 401 from the backend.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// SetToken installs a new access token and decodes its claims.
func (s *Session) SetToken(token string) error {
	user, err := decodeUserFromToken(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

// Token returns the current access token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the decoded identity, nil when signed out.
func (s *Session) User() *UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a token is installed.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Invalidate clears the session and fires the logout hook once.
func (s *Session) Invalidate() {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.user = nil
	hook := s.onLogout
	s.mu.Unlock()

	if hadToken && hook != nil {
		hook()
	}
}

// decodeUserFromToken extracts identity claims without verifying the
// signature. Verification is the backend's job on every call; the client
// only needs the claims for display and role gating.
func decodeUserFromToken(token string) (*UserInfo, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("decode access token: unexpected claims shape")
	}

	user := &UserInfo{Role: domain.RoleAdmin}

	// UserId is the backend's custom claim; sub and nameidentifier are
	// fallbacks seen across backend builds.
	for _, key := range []string{"UserId", "sub", claimNameID} {
		if v, ok := claims[key].(string); ok && v != "" {
			user.ID = v
			break
		}
	}
	if v, ok := claims[claimEmail].(string); ok {
		user.Email = v
	}
	if v, ok := claims[claimRole].(string); ok {
		switch v {
		case "Student":
			user.Role = domain.RoleStudent
		case "Lecturer":
			user.Role = domain.RoleLecturer
		default:
			user.Role = domain.RoleAdmin
		}
	}
	return user, nil
}
