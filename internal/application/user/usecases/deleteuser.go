package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID string
}

type DeleteUserResult struct {
	UserID string
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	found, err := uc.userRepo.Delete(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &DeleteUserResult{UserID: cmd.UserID}, nil
}
