package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/exp/rand"

	"worknestBack/internal/models"
)

type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey}, nil
}

// NewJWT mints an access token for the identity. The subject carries the
// provider uid, the email travels as a custom claim.
func (m *Manager) NewJWT(identity models.Identity, ttl time.Duration) (string, error) {
	claims := models.Claims{
		Email: identity.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   identity.UID,
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

// Parse validates an access token and returns the identity it carries.
func (m *Manager) Parse(accessToken string) (models.Identity, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return models.Identity{}, err
	}
	if !token.Valid {
		return models.Identity{}, errors.New("invalid access token")
	}

	return models.Identity{UID: claims.Subject, Email: claims.Email}, nil
}

func (m *Manager) NewRefreshToken() (string, error) {
	b := make([]byte, 32)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", b), nil
}
