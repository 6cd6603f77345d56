package usecases

import (
	"context"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

// GetTicketQuery loads a ticket by id, or by reference when TicketID is empty.
type GetTicketQuery struct {
	TicketID  string
	Reference string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	var (
		existing *ticket.Ticket
		err      error
	)
	if query.TicketID != "" {
		existing, err = uc.ticketRepo.FindByID(ctx, query.TicketID)
	} else {
		existing, err = uc.ticketRepo.FindByReference(ctx, query.Reference)
	}
	if err != nil {
		uc.logger.Errorw("failed to load ticket",
			"error", err, "ticket_id", query.TicketID, "reference", query.Reference)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return existing, nil
}
