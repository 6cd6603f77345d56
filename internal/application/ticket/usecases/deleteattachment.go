package usecases

import (
	"context"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	TicketID     string
	AttachmentID string
}

type DeleteAttachmentResult struct {
	AttachmentID string
}

type DeleteAttachmentUseCase struct {
	ticketRepo ticket.Repository
	store      AttachmentStore
	logger     logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.Repository,
	store AttachmentStore,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		logger:     logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var name string
	for _, a := range existing.Attachments() {
		if a.ID() == cmd.AttachmentID {
			name = a.Name()
			break
		}
	}

	if !existing.DeleteAttachment(cmd.AttachmentID) {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to persist attachment deletion", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Best-effort blob cleanup: the metadata is already gone.
	if err := uc.store.Delete(ctx, attachmentKey(cmd.TicketID, name)); err != nil {
		uc.logger.Warnw("failed to delete attachment content", "error", err, "ticket_id", cmd.TicketID)
	}

	return &DeleteAttachmentResult{AttachmentID: cmd.AttachmentID}, nil
}
