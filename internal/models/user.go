package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// Identity is the authenticated user as reported by the auth provider: an
// email plus the provider-assigned opaque id. No credential material is ever
// held in-app.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func (i Identity) IsZero() bool {
	return i.UID == "" && i.Email == ""
}

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Session is a signed-in identity together with the tokens the client keeps.
type Session struct {
	Identity     Identity  `json:"identity"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleSignInRequest carries the id_token obtained from the federated
// provider on the client.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token"`
}
