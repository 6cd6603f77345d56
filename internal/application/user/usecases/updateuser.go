package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	vo "clientsolve/internal/domain/user/valueobjects"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID   string
	Username *string
	Email    *string
	// Password, when set, is hashed before it reaches the entity. A nil
	// password leaves the stored hash untouched.
	Password *string
	Role     *string
	ClientID *string
}

type UpdateUserResult struct {
	UserID string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Email != nil && *cmd.Email != existing.Email() {
		other, err := uc.userRepo.FindByEmail(ctx, *cmd.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
	}

	var passwordHash *string
	if cmd.Password != nil {
		if len(*cmd.Password) == 0 {
			return nil, errors.NewValidationError("password must not be empty")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		passwordHash = &hash
	}

	update := user.Update{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		ClientID:     cmd.ClientID,
	}
	if cmd.Role != nil {
		role := vo.Role(*cmd.Role)
		update.Role = &role
	}

	if err := existing.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.userRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &UpdateUserResult{UserID: existing.ID()}, nil
}
