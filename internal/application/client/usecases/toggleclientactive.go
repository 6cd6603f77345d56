package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type ToggleClientActiveCommand struct {
	ClientID string
}

type ToggleClientActiveResult struct {
	ClientID string
	Active   bool
}

type ToggleClientActiveUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewToggleClientActiveUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *ToggleClientActiveUseCase {
	return &ToggleClientActiveUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ToggleClientActiveUseCase) Execute(ctx context.Context, cmd ToggleClientActiveCommand) (*ToggleClientActiveResult, error) {
	existing, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "error", err, "client_id", cmd.ClientID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	existing.ToggleActive()

	found, err := uc.clientRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update client", "error", err, "client_id", cmd.ClientID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("client not found")
	}

	uc.logger.Infow("client active flag toggled", "client_id", cmd.ClientID, "active", existing.Active())

	return &ToggleClientActiveResult{
		ClientID: existing.ID(),
		Active:   existing.Active(),
	}, nil
}
