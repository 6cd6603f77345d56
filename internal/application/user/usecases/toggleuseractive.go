package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type ToggleUserActiveCommand struct {
	UserID string
}

type ToggleUserActiveResult struct {
	UserID string
	Active bool
}

type ToggleUserActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleUserActiveUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ToggleUserActiveUseCase {
	return &ToggleUserActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleUserActiveUseCase) Execute(ctx context.Context, cmd ToggleUserActiveCommand) (*ToggleUserActiveResult, error) {
	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	existing.ToggleActive()

	found, err := uc.userRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("user not found")
	}

	uc.logger.Infow("user active flag toggled", "user_id", cmd.UserID, "active", existing.Active())

	return &ToggleUserActiveResult{
		UserID: existing.ID(),
		Active: existing.Active(),
	}, nil
}
