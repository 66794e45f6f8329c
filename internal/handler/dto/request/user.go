package request

import (
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role" binding:"omitempty,oneof=client owner admin"`
	DNI      *string `json:"dni,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Plate    *string `json:"plate,omitempty"`
	Gender   *string `json:"gender,omitempty"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserInput {
	return commands.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		DNI:      r.DNI,
		Phone:    r.Phone,
		Plate:    r.Plate,
		Gender:   r.Gender,
	}
}

type UpdateUserRequest struct {
	Name     *string       `json:"name,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Role     *string       `json:"role,omitempty" binding:"omitempty,oneof=client owner admin"`
	Balance  *money.Amount `json:"balance,omitempty" swaggertype:"string" example:"25.00"`
	Password *string       `json:"password,omitempty" binding:"omitempty,min=1"`
	DNI      *string       `json:"dni,omitempty"`
	Phone    *string       `json:"phone,omitempty"`
	Plate    *string       `json:"plate,omitempty"`
	Gender   *string       `json:"gender,omitempty"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserInput {
	return commands.UpdateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Balance:  r.Balance,
		Password: r.Password,
		DNI:      r.DNI,
		Phone:    r.Phone,
		Plate:    r.Plate,
		Gender:   r.Gender,
	}
}
