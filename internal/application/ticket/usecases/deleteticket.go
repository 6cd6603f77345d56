package usecases

import (
	"context"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
}

type DeleteTicketResult struct {
	TicketID string
}

// DeleteTicketUseCase removes a ticket and its embedded comments and
// attachments. Deletion emits no event, so no notification goes out.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	found, err := uc.ticketRepo.Delete(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
