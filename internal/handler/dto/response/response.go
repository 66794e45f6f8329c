package response

import (
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AdjustAvailableResponse struct {
	Message   string    `json:"message"`
	ID        uuid.UUID `json:"id"`
	Available int       `json:"available"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
