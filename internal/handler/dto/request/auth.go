package request

import "estaciona-api/internal/usecase/commands"

// LoginRequest leaves presence checks to the use case so a missing field
// answers 400 with the missing credentials message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) ToCommand() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}
