package usecases

import (
	"context"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type DeleteCommentCommand struct {
	TicketID  string
	CommentID string
}

type DeleteCommentResult struct {
	CommentID string
}

type DeleteCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !existing.DeleteComment(cmd.CommentID) {
		return nil, errors.NewNotFoundError("comment not found")
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to persist comment deletion", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &DeleteCommentResult{CommentID: cmd.CommentID}, nil
}
