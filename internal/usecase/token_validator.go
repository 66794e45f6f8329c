package usecase

import (
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errs.New("token has expired")
	ErrTokenInvalid = errs.New("invalid token")
)

// Principal is the caller identity carried by a bearer token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) HasRoleAtLeast(min user.Role) bool {
	return p.Role.IsValid() && p.Role.Level() >= min.Level()
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return Principal{}, errs.Mark(err, ErrTokenExpired)
		}
		return Principal{}, errs.Mark(err, ErrTokenInvalid)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrTokenInvalid)
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, ErrTokenInvalid
	}

	return Principal{UserID: claims.UserID, Role: role}, nil
}
