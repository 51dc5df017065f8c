package services

import (
	"context"
	"time"

	"worknestBack/internal/models"
	"worknestBack/utils"
)

// SessionStore persists refresh-token sessions.
type SessionStore interface {
	SaveSession(ctx context.Context, refreshToken string, identity models.Identity, ttl time.Duration) error
	GetSession(ctx context.Context, refreshToken string) (models.Identity, error)
	DeleteSession(ctx context.Context, refreshToken string) error
}

// UserService is the session/identity store: it delegates credential
// verification to the external provider and manages the resulting sessions.
// It is constructed once at process start and injected where needed.
type UserService struct {
	Provider     IdentityProvider
	Sessions     SessionStore
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	identity, err := s.Provider.SignUp(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	// Registration signs the user in directly.
	return s.issueSession(ctx, identity)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	identity, err := s.Provider.SignIn(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	return s.issueSession(ctx, identity)
}

func (s *UserService) SignInWithGoogle(ctx context.Context, idToken string) (models.Session, error) {
	identity, err := s.Provider.SignInWithGoogle(ctx, idToken)
	if err != nil {
		return models.Session{}, err
	}
	return s.issueSession(ctx, identity)
}

// Resolve restores a session from a refresh token: the one-time asynchronous
// resolution a client performs at startup. An unknown token reports
// models.ErrNoRecord, which callers treat as "anonymous", never as a failure.
func (s *UserService) Resolve(ctx context.Context, refreshToken string) (models.Session, error) {
	if refreshToken == "" {
		return models.Session{}, models.ErrNoRecord
	}

	identity, err := s.Sessions.GetSession(ctx, refreshToken)
	if err != nil {
		return models.Session{}, err
	}

	// Re-read the identity from the provider so a user deleted upstream does
	// not keep resolving from a stale session.
	identity, err = s.Provider.GetUser(ctx, identity.UID)
	if err != nil {
		return models.Session{}, err
	}

	accessToken, err := s.TokenManager.NewJWT(identity, s.AccessTTL)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.AccessTTL),
	}, nil
}

// SignOut drops the session unconditionally.
func (s *UserService) SignOut(ctx context.Context, refreshToken string) error {
	return s.Sessions.DeleteSession(ctx, refreshToken)
}

func (s *UserService) issueSession(ctx context.Context, identity models.Identity) (models.Session, error) {
	accessToken, err := s.TokenManager.NewJWT(identity, s.AccessTTL)
	if err != nil {
		return models.Session{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Session{}, err
	}

	if err := s.Sessions.SaveSession(ctx, refreshToken, identity, s.RefreshTTL); err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.AccessTTL),
	}, nil
}
