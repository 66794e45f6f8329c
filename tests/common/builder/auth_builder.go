//go:build unit || e2e

package builder

import (
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Email       string
	Password    string
	UserID      uuid.UUID
	AccessToken string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "client@example.com",
		Password:    "password123",
		UserID:      uuid.New(),
		AccessToken: "signed.jwt.token",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID:      a.UserID,
		AccessToken: a.AccessToken,
	}
}
