package auth

import (
	"clientsolve/internal/application/auth/usecases"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
}

func loginResponseFromResult(result *usecases.LoginResult) LoginResponse {
	return LoginResponse{
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
		Role:     result.Role,
		ClientID: result.ClientID,
	}
}
