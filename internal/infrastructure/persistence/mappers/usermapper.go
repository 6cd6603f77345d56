package mappers

import (
	"fmt"

	"clientsolve/internal/domain/user"
	vo "clientsolve/internal/domain/user/valueobjects"
	"clientsolve/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		ClientID:     u.ClientID(),
		Active:       u.Active(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to map user role (id=%s): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		role,
		model.ClientID,
		model.Active,
	)
}
