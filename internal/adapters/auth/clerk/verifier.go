package clerk

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"pawmatch/internal/ports/auth"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier implementa auth.AuthVerifier usando Clerk.
//
// Si hay una public key PEM configurada, los session tokens (JWT RS256) se
// verifican localmente sin round-trip. Si no, se cae a introspección remota
// contra la API de Clerk.
type Verifier struct {
	client    *Client
	publicKey *rsa.PublicKey
}

func NewVerifier(client *Client, publicKeyPEM string) (*Verifier, error) {
	v := &Verifier{client: client}

	publicKeyPEM = strings.TrimSpace(publicKeyPEM)
	if publicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("clerk: parse public key: %w", err)
		}
		v.publicKey = key
	}

	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	if v.publicKey != nil {
		return v.verifyLocal(token)
	}
	if v.client.IsConfigured() {
		return v.client.VerifyToken(ctx, token)
	}
	return auth.Claims{}, ErrNotConfigured
}

type sessionClaims struct {
	jwt.RegisteredClaims

	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func (v *Verifier) verifyLocal(token string) (auth.Claims, error) {
	var sc sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.publicKey, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	sub := strings.TrimSpace(sc.Subject)
	if sub == "" {
		return auth.Claims{}, errors.New("token claims missing sub")
	}

	return auth.Claims{
		UserID:   sub,
		Email:    strings.TrimSpace(sc.Email),
		Name:     strings.TrimSpace(sc.Name),
		ImageURL: strings.TrimSpace(sc.ImageURL),
	}, nil
}
