package usecases

import (
	"context"
	"time"

	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	vo "clientsolve/internal/domain/ticket/valueobjects"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	ClientID    *string
}

type UpdateTicketResult struct {
	TicketID  string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	dispatcher events.Dispatcher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	update := ticket.Update{
		Title:       cmd.Title,
		Description: cmd.Description,
		ClientID:    cmd.ClientID,
	}
	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		update.Status = &status
	}
	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		update.Priority = &priority
	}

	if err := existing.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := uc.dispatcher.Publish(ticket.NewTicketUpdatedEvent(existing)); err != nil {
		uc.logger.Warnw("failed to publish ticket updated event", "error", err, "ticket_id", existing.ID())
	}

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
