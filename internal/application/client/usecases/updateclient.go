package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type UpdateClientCommand struct {
	ClientID    string
	CompanyName *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Siret       *string
	IBAN        *string
	BIC         *string
}

type UpdateClientResult struct {
	ClientID string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error) {
	uc.logger.Infow("executing update client use case", "client_id", cmd.ClientID)

	existing, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "error", err, "client_id", cmd.ClientID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	update := client.Update{
		CompanyName: cmd.CompanyName,
		ContactName: cmd.ContactName,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		Siret:       cmd.Siret,
		IBAN:        cmd.IBAN,
		BIC:         cmd.BIC,
	}
	if err := existing.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.clientRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update client", "error", err, "client_id", cmd.ClientID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("client not found")
	}

	return &UpdateClientResult{ClientID: existing.ID()}, nil
}
