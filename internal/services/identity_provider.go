package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"worknestBack/internal/models"
)

// IdentityProvider is the external authentication collaborator. Credential
// verification happens entirely on the provider side; only the resulting
// identity (email, opaque id) and an error classification cross this boundary.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (models.Identity, error)
	SignIn(ctx context.Context, email, password string) (models.Identity, error)
	SignInWithGoogle(ctx context.Context, idToken string) (models.Identity, error)
	GetUser(ctx context.Context, uid string) (models.Identity, error)
}

// FirebaseIdentityProvider talks to Firebase Auth: the Identity Toolkit API
// for credential flows (the Admin SDK deliberately has no password sign-in)
// and the Admin Auth client for uid lookups on session restore.
type FirebaseIdentityProvider struct {
	relyingparty *identitytoolkit.RelyingpartyService
	authClient   *firebaseauth.Client
}

func NewFirebaseIdentityProvider(ctx context.Context, webAPIKey string, authClient *firebaseauth.Client) (*FirebaseIdentityProvider, error) {
	if webAPIKey == "" {
		return nil, errors.New("identity provider: web API key is required")
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(webAPIKey))
	if err != nil {
		return nil, fmt.Errorf("identity provider: creating identitytoolkit service: %w", err)
	}

	return &FirebaseIdentityProvider{
		relyingparty: svc.Relyingparty,
		authClient:   authClient,
	}, nil
}

func (p *FirebaseIdentityProvider) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	resp, err := p.relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return models.Identity{}, classifyProviderError(err)
	}

	return models.Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

func (p *FirebaseIdentityProvider) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	resp, err := p.relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return models.Identity{}, classifyProviderError(err)
	}

	return models.Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

func (p *FirebaseIdentityProvider) SignInWithGoogle(ctx context.Context, idToken string) (models.Identity, error) {
	resp, err := p.relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:   "id_token=" + idToken + "&providerId=google.com",
		RequestUri: "http://localhost",
	}).Context(ctx).Do()
	if err != nil {
		return models.Identity{}, classifyProviderError(err)
	}

	return models.Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

func (p *FirebaseIdentityProvider) GetUser(ctx context.Context, uid string) (models.Identity, error) {
	record, err := p.authClient.GetUser(ctx, uid)
	if err != nil {
		if firebaseauth.IsUserNotFound(err) {
			return models.Identity{}, models.ErrUserNotFound
		}
		return models.Identity{}, err
	}

	return models.Identity{UID: record.UID, Email: record.Email}, nil
}

// classifyProviderError maps Identity Toolkit failure codes onto the app's
// sentinel errors. Anything unrecognized passes through untouched so it is
// logged and surfaced as a generic provider failure.
func classifyProviderError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case strings.Contains(apiErr.Message, "EMAIL_EXISTS"):
		return models.ErrDuplicateEmail
	case strings.Contains(apiErr.Message, "EMAIL_NOT_FOUND"),
		strings.Contains(apiErr.Message, "INVALID_PASSWORD"),
		strings.Contains(apiErr.Message, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(apiErr.Message, "USER_DISABLED"):
		return models.ErrInvalidCredentials
	}
	return err
}
