package mappers

import (
	"fmt"
	"time"

	"clientsolve/internal/domain/ticket"
	vo "clientsolve/internal/domain/ticket/valueobjects"
	"clientsolve/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket aggregates and
// persistence models. The aggregate spans three tables: the ticket row plus
// its comment and attachment rows.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	CommentsToModels(t *ticket.Ticket) []*models.CommentModel
	AttachmentsToModels(t *ticket.Ticket) []*models.AttachmentModel

	// ToDomain rebuilds the aggregate from its rows.
	ToDomain(model *models.TicketModel, comments []*models.CommentModel, attachments []*models.AttachmentModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Reference:   t.Reference(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		ClientID:    t.ClientID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentsToModels(t *ticket.Ticket) []*models.CommentModel {
	comments := t.Comments()
	out := make([]*models.CommentModel, 0, len(comments))
	for _, c := range comments {
		out = append(out, &models.CommentModel{
			ID:         c.ID(),
			TicketID:   c.TicketID(),
			UserID:     c.UserID(),
			Content:    c.Content(),
			IsInternal: c.IsInternal(),
			CreatedAt:  c.CreatedAt().UnixMilli(),
		})
	}
	return out
}

func (m *TicketMapperImpl) AttachmentsToModels(t *ticket.Ticket) []*models.AttachmentModel {
	attachments := t.Attachments()
	out := make([]*models.AttachmentModel, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, &models.AttachmentModel{
			ID:        a.ID(),
			TicketID:  t.ID(),
			Name:      a.Name(),
			Size:      a.Size(),
			MimeType:  a.MimeType(),
			URL:       a.URL(),
			CreatedAt: a.CreatedAt().UnixMilli(),
		})
	}
	return out
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, commentModels []*models.CommentModel, attachmentModels []*models.AttachmentModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status (id=%s): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket priority (id=%s): %w", model.ID, err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, cm := range commentModels {
		c, err := ticket.ReconstructComment(
			cm.ID, cm.TicketID, cm.UserID, cm.Content, cm.IsInternal,
			millisToTime(cm.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to map comment (id=%s): %w", cm.ID, err)
		}
		comments = append(comments, c)
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for _, am := range attachmentModels {
		a, err := ticket.ReconstructAttachment(
			am.ID, am.Name, am.Size, am.MimeType, am.URL,
			millisToTime(am.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to map attachment (id=%s): %w", am.ID, err)
		}
		attachments = append(attachments, a)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Reference,
		model.Title,
		model.Description,
		status,
		priority,
		model.ClientID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		comments,
		attachments,
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
