package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Motiv/internal/auth"
	"Motiv/internal/backend"
	"Motiv/internal/cache"
	dom "Motiv/internal/domain"
	"Motiv/internal/validation"

	"go.uber.org/zap"
)

// LoginResult is a freshly created session and the profile behind it.
type LoginResult struct {
	Session   dom.Session
	User      dom.User
	IsNewUser bool
}

// UserService handles sign-in and the profile of the signed-in user.
type UserService struct {
	backend  Backend
	sessions auth.Sessions
	cache    *cache.GoalCache
	log      *zap.Logger
}

// NewUserService returns a new UserService. If c is nil, no cached goal
// pages are evicted on sign-out or profile changes.
func NewUserService(b Backend, sessions auth.Sessions, c *cache.GoalCache, log *zap.Logger) *UserService {
	return &UserService{backend: b, sessions: sessions, cache: c, log: log}
}

// SendCode asks the backend to text a one-time code to phone.
func (s *UserService) SendCode(ctx context.Context, phone string) (backend.CodeSent, error) {
	phone = strings.TrimSpace(phone)
	if !validation.IsIranianMobile(phone) {
		return backend.CodeSent{}, invalid("phone number is not a valid mobile number")
	}
	out, err := s.backend.SendCode(ctx, phone)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return backend.CodeSent{}, invalid("%s", be.Message)
		}
		return backend.CodeSent{}, translate(err)
	}
	return out, nil
}

// Login exchanges a code or password for a backend token and stores it in a
// new session.
func (s *UserService) Login(ctx context.Context, phone, code, password string) (LoginResult, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if !validation.IsIranianMobile(phone) {
		return LoginResult{}, invalid("phone number is not a valid mobile number")
	}
	if code == "" && password == "" {
		return LoginResult{}, invalid("code or password is required")
	}

	tok, err := s.backend.Auth(ctx, backend.AuthRequest{PhoneNumber: phone, Code: code, Password: password})
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, translate(err)
	}

	u, err := s.backend.GetMe(ctx, tok.AccessToken)
	if err != nil {
		return LoginResult{}, translate(err)
	}
	if u.Phone == "" {
		u.Phone = phone
	}

	sess, err := s.sessions.Create(ctx, dom.Session{
		Token:     tok.AccessToken,
		UserID:    u.ID,
		Phone:     u.Phone,
		ExpiresAt: tok.ExpiresAt,
		RefreshAt: tok.RefreshAt,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}
	s.log.Info("user signed in", zap.Int64("user_id", u.ID), zap.Bool("new_user", tok.IsNewUser))
	return LoginResult{Session: sess, User: u, IsNewUser: tok.IsNewUser}, nil
}

// Logout drops the session and the goal pages cached for its user. A
// missing session is not an error.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, auth.ErrNoSession) {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	if s.cache != nil && sess.UserID != 0 {
		if err := s.cache.InvalidateUser(ctx, sess.UserID); err != nil {
			s.log.Warn("evict cached goals", zap.Int64("user_id", sess.UserID), zap.Error(err))
		}
	}
	return nil
}

// Me returns the profile of the signed-in user.
func (s *UserService) Me(ctx context.Context, sess dom.Session) (dom.User, error) {
	u, err := s.backend.GetMe(ctx, sess.Token)
	if err != nil {
		return dom.User{}, translate(err)
	}
	return u, nil
}

// UpdateProfile changes name and email. Empty fields are left as they are.
func (s *UserService) UpdateProfile(ctx context.Context, sess dom.Session, in backend.ProfileUpdate) (dom.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	if in == (backend.ProfileUpdate{}) {
		return dom.User{}, invalid("nothing to update")
	}
	u, err := s.backend.EditUser(ctx, sess.Token, in)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return dom.User{}, invalid("%s", be.Message)
		}
		return dom.User{}, translate(err)
	}
	// Creator names are cached in the owner's and the supervisors' pages.
	if s.cache != nil {
		if err := s.cache.InvalidateGoals(ctx); err != nil {
			s.log.Warn("evict cached goals", zap.Error(err))
		}
	}
	return u, nil
}

// ChangePassword sets the password used for password sign-in.
func (s *UserService) ChangePassword(ctx context.Context, sess dom.Session, password, confirmation string) error {
	if password == "" {
		return invalid("password is required")
	}
	if password != confirmation {
		return invalid("passwords do not match")
	}
	if err := s.backend.EditPassword(ctx, sess.Token, password, confirmation); err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return invalid("%s", be.Message)
		}
		return translate(err)
	}
	return nil
}
