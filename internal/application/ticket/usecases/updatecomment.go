package usecases

import (
	"context"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type UpdateCommentCommand struct {
	TicketID  string
	CommentID string
	Content   string
}

type UpdateCommentResult struct {
	CommentID string
}

type UpdateCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateCommentUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*UpdateCommentResult, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	found, err := existing.UpdateComment(cmd.CommentID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !found {
		return nil, errors.NewNotFoundError("comment not found")
	}

	found, err = uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to persist comment update", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &UpdateCommentResult{CommentID: cmd.CommentID}, nil
}
