package response

import (
	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	PhotoURL string    `json:"photoUrl,omitempty"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

func FromUserView(v *usecase.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromLoginResult(result *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		User: *FromUserView(result.User),
	}
}
