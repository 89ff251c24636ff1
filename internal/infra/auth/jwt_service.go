// Package auth provides the concrete identity-provider token verifier.
package auth

import (
	"crypto/rsa"
	"errors"

	"bizdir/config"
	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService verifies identity-provider bearer tokens. Tokens are signed by
// the provider with either RS256 (public key configured as PEM) or HS256
// (shared secret, development setups).
type jwtService struct {
	publicKey *rsa.PublicKey
	secret    string
	issuer    string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Identity == nil {
		return nil, errors.New("identity configuration must be provided")
	}

	svc := &jwtService{
		secret: cfg.Identity.Secret,
		issuer: cfg.Identity.Issuer,
	}

	if cfg.Identity.PublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.Identity.PublicKeyPEM))
		if err != nil {
			return nil, err
		}
		svc.publicKey = key
	}

	if svc.publicKey == nil && svc.secret == "" {
		return nil, errors.New("identity public key or secret must be provided")
	}

	return svc, nil
}

// Verify parses and validates a token string, returning its claims.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	var opts []jwt.ParserOption
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, s.keyFor, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &service.TokenClaims{
		Subject: subject,
		Email:   email,
		Role:    entity.Role(role),
	}, nil
}

// keyFor selects the verification key matching the token's signing method.
func (s *jwtService) keyFor(token *jwt.Token) (any, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodRSA:
		if s.publicKey == nil {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return s.publicKey, nil
	case *jwt.SigningMethodHMAC:
		if s.secret == "" {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return []byte(s.secret), nil
	default:
		return nil, jwt.ErrTokenSignatureInvalid
	}
}
