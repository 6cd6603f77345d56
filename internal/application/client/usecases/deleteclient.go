package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type DeleteClientCommand struct {
	ClientID string
}

type DeleteClientResult struct {
	ClientID string
}

// DeleteClientUseCase removes a client record. Tickets and user accounts
// referencing the client are left in place and simply stop resolving.
type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) (*DeleteClientResult, error) {
	uc.logger.Infow("executing delete client use case", "client_id", cmd.ClientID)

	found, err := uc.clientRepo.Delete(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to delete client", "error", err, "client_id", cmd.ClientID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("client not found")
	}

	uc.logger.Infow("client deleted", "client_id", cmd.ClientID)

	return &DeleteClientResult{ClientID: cmd.ClientID}, nil
}
