package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
)

// TokenService implementa ports.IdentityGate e ports.TokenIssuer usando
// JWTs assinados. O token de sessão é opaco para o resto do core: quem
// consome identidade só enxerga o user ID resolvido.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um novo TokenService
func NewTokenService(secret string, accessExpiry string) (*TokenService, error) {
	expiry, err := time.ParseDuration(accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid access expiry %q: %w", accessExpiry, err)
	}

	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}, nil
}

// Issue emite um token de sessão para o usuário
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveCaller resolve o token para o ID interno do usuário.
// Consulta pura: token ausente, expirado ou adulterado resulta em
// errors.ErrUnauthenticated, nunca em pânico.
func (s *TokenService) ResolveCaller(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.ErrUnauthenticated
	}

	return claims.Subject, nil
}

// garante a implementação das interfaces de porta
var (
	_ ports.IdentityGate = (*TokenService)(nil)
	_ ports.TokenIssuer  = (*TokenService)(nil)
)
