package usecases

import (
	"context"
	"time"

	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   string
	UserID     string
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID string
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	dispatcher events.Dispatcher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "internal", cmd.IsInternal)

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to persist comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := uc.dispatcher.Publish(ticket.NewCommentAddedEvent(existing, comment)); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "error", err, "ticket_id", existing.ID())
	}

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
