package user

import (
	"clientsolve/internal/application/user/usecases"
	"clientsolve/internal/domain/user"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin client"`
	ClientID string `json:"client_id,omitempty"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		ClientID: r.ClientID,
	}
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	ClientID *string `json:"client_id,omitempty"`
}

func (r *UpdateUserRequest) ToCommand(userID string) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		UserID:   userID,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		ClientID: r.ClientID,
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
	Active   bool   `json:"active"`
}

func userResponseFromEntity(entity *user.User) UserResponse {
	return UserResponse{
		ID:       entity.ID(),
		Username: entity.Username(),
		Email:    entity.Email(),
		Role:     entity.Role().String(),
		ClientID: entity.ClientID(),
		Active:   entity.Active(),
	}
}

func userResponsesFromEntities(entities []*user.User) []UserResponse {
	responses := make([]UserResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, userResponseFromEntity(entity))
	}
	return responses
}
