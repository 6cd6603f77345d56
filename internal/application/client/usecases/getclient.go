package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type GetClientQuery struct {
	ClientID string
}

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*client.Client, error) {
	existing, err := uc.clientRepo.FindByID(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "error", err, "client_id", query.ClientID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("client not found")
	}
	return existing, nil
}
