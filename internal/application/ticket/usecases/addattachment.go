package usecases

import (
	"context"
	"fmt"
	"io"
	"time"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

// AttachmentStore keeps attachment bytes outside the ticket aggregate. The
// returned URL is what the ticket records.
type AttachmentStore interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type AddAttachmentCommand struct {
	TicketID string
	Name     string
	Size     int64
	MimeType string
	Content  io.Reader
}

type AddAttachmentResult struct {
	AttachmentID string
	URL          string
	CreatedAt    time.Time
}

type AddAttachmentUseCase struct {
	ticketRepo ticket.Repository
	store      AttachmentStore
	logger     logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	store AttachmentStore,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		logger:     logger,
	}
}

func attachmentKey(ticketID, name string) string {
	return fmt.Sprintf("%s/%s", ticketID, name)
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	uc.logger.Infow("executing add attachment use case", "ticket_id", cmd.TicketID, "name", cmd.Name)

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	url, err := uc.store.Put(ctx, attachmentKey(cmd.TicketID, cmd.Name), cmd.Content, cmd.Size, cmd.MimeType)
	if err != nil {
		uc.logger.Errorw("failed to store attachment content", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	attachment, err := ticket.NewAttachment(cmd.Name, cmd.Size, cmd.MimeType, url)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.AddAttachment(attachment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to persist attachment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &AddAttachmentResult{
		AttachmentID: attachment.ID(),
		URL:          attachment.URL(),
		CreatedAt:    attachment.CreatedAt(),
	}, nil
}
