package api

import (
	"context"
	"errors"

	"spicytrolly/internal/models"
	"spicytrolly/internal/session"
	"spicytrolly/internal/validation"
)

// AuthService drives the authentication lifecycle. Login is the only
// path that populates the session; Logout and any 401 response clear
// it. There is no token refresh: a rejected token means logging in
// again.
type AuthService struct {
	c *Client
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if err := validation.Credentials(creds); err != nil {
		return nil, err
	}

	var out models.AuthResponse
	if err := s.c.post(ctx, "/auth/login", creds, &out); err != nil {
		return nil, err
	}

	admin := out.Admin
	if err := s.c.session.Set(session.Session{Token: out.Token, Admin: &admin}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the server, then clears the stored session. Calling
// it while already anonymous is a no-op. The session is cleared even
// when the server call fails; a token the server already rejects must
// not linger locally.
func (s *AuthService) Logout(ctx context.Context) error {
	sess, err := s.c.session.Get()
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return nil
	}

	reqErr := s.c.post(ctx, "/auth/logout", nil, nil)
	if err := s.c.session.Clear(); err != nil {
		return err
	}
	if reqErr != nil && !errors.Is(reqErr, ErrUnauthorized) {
		return reqErr
	}
	return nil
}

// Verify asks the server whether the stored token is still valid and
// returns the admin identity it belongs to.
func (s *AuthService) Verify(ctx context.Context) (*models.Admin, error) {
	var out models.Admin
	if err := s.c.get(ctx, "/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
