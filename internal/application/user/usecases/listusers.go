package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	"clientsolve/internal/shared/logger"
)

type ListUsersQuery struct {
	// ClientID narrows the listing to the client-role accounts of one
	// client. Empty lists every account.
	ClientID string
	Search   string
	Active   *bool
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*user.User, error) {
	users, err := uc.userRepo.List(ctx, user.Filter{
		ClientID: query.ClientID,
		Search:   query.Search,
		Active:   query.Active,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
