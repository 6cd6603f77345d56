package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type CreateClientCommand struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Siret       string
	IBAN        string
	BIC         string
}

type CreateClientResult struct {
	ClientID string
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error) {
	uc.logger.Infow("executing create client use case", "contact_name", cmd.ContactName)

	newClient, err := client.NewClient(
		cmd.CompanyName,
		cmd.ContactName,
		cmd.Email,
		cmd.Phone,
		cmd.Address,
		cmd.Siret,
		cmd.IBAN,
		cmd.BIC,
	)
	if err != nil {
		uc.logger.Errorw("failed to create client entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, newClient); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, err
	}

	uc.logger.Infow("client created successfully", "client_id", newClient.ID())

	return &CreateClientResult{ClientID: newClient.ID()}, nil
}
