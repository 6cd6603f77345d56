package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/logger"
)

type ListClientsQuery struct {
	Search string
	Active *bool
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) ([]*client.Client, error) {
	clients, err := uc.clientRepo.List(ctx, client.Filter{
		Search: query.Search,
		Active: query.Active,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, err
	}
	return clients, nil
}
