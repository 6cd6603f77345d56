package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type GetUserQuery struct {
	UserID string
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*user.User, error) {
	existing, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", query.UserID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return existing, nil
}
