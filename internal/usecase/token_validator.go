package usecase

import (
	"zenithstays/internal/domain/user"
	"zenithstays/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the middleware-facing port for session tokens: it turns
// a raw token string into the authenticated identity and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (v *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	// Reject tokens whose role no longer parses, e.g. after a role rename.
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
