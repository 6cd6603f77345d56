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

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	ClientID    string
}

type CreateTicketResult struct {
	TicketID  string
	Reference string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	references ticket.ReferenceGenerator
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	references ticket.ReferenceGenerator,
	dispatcher events.Dispatcher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		references: references,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "client_id", cmd.ClientID)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		cmd.ClientID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	reference, err := uc.references.Next(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket reference", "error", err)
		return nil, err
	}
	if err := newTicket.SetReference(reference); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Fire-and-forget: the ticket is committed whether or not anyone is
	// listening.
	if err := uc.dispatcher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err, "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "reference", reference)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Reference: newTicket.Reference(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
