// Package service defines domain-level interfaces for external collaborators
// (identity provider, mail relay, object storage). Infrastructure supplies
// the implementations.
package service

import "bizdir/internal/domain/entity"

// TokenClaims is the verified content of an identity-provider token.
type TokenClaims struct {
	Subject string // Stable identity-provider user ID.
	Email   string
	Role    entity.Role
}

// TokenService verifies identity-provider bearer tokens. Verification is
// purely local (signature + expiry); resolving the subject to a stored
// profile is the access gate's job.
type TokenService interface {
	Verify(tokenString string) (*TokenClaims, error)
}
