package ticket

import (
	"time"

	"clientsolve/internal/application/ticket/usecases"
	"clientsolve/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"required"`
	ClientID    string `json:"client_id,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(clientID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		ClientID:    clientID,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	ClientID    *string `json:"client_id,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		ClientID:    r.ClientID,
	}
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID          string               `json:"id"`
	Reference   string               `json:"reference"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Priority    string               `json:"priority"`
	ClientID    string               `json:"client_id"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Comments    []CommentResponse    `json:"comments"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// TicketSummaryResponse is the listing shape; children are only loaded on the
// detail endpoint.
type TicketSummaryResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func commentResponseFromEntity(comment *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID(),
		UserID:     comment.UserID(),
		Content:    comment.Content(),
		IsInternal: comment.IsInternal(),
		CreatedAt:  comment.CreatedAt(),
	}
}

func attachmentResponseFromEntity(attachment *ticket.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:        attachment.ID(),
		Name:      attachment.Name(),
		Size:      attachment.Size(),
		MimeType:  attachment.MimeType(),
		URL:       attachment.URL(),
		CreatedAt: attachment.CreatedAt(),
	}
}

// ticketResponseFromEntity renders the detail view. Internal comments are
// dropped for non-admin viewers.
func ticketResponseFromEntity(entity *ticket.Ticket, isAdmin bool) TicketResponse {
	visible := entity.VisibleComments(isAdmin)
	comments := make([]CommentResponse, 0, len(visible))
	for _, comment := range visible {
		comments = append(comments, commentResponseFromEntity(comment))
	}

	attachments := make([]AttachmentResponse, 0, len(entity.Attachments()))
	for _, attachment := range entity.Attachments() {
		attachments = append(attachments, attachmentResponseFromEntity(attachment))
	}

	return TicketResponse{
		ID:          entity.ID(),
		Reference:   entity.Reference(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		Priority:    entity.Priority().String(),
		ClientID:    entity.ClientID(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
		Comments:    comments,
		Attachments: attachments,
	}
}

func ticketSummariesFromEntities(entities []*ticket.Ticket) []TicketSummaryResponse {
	responses := make([]TicketSummaryResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, TicketSummaryResponse{
			ID:        entity.ID(),
			Reference: entity.Reference(),
			Title:     entity.Title(),
			Status:    entity.Status().String(),
			Priority:  entity.Priority().String(),
			ClientID:  entity.ClientID(),
			CreatedAt: entity.CreatedAt(),
			UpdatedAt: entity.UpdatedAt(),
		})
	}
	return responses
}

type UploadedAttachment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadAttachmentsResponse reports the outcome of a multipart upload. Files
// over the size limit are listed by name instead of failing the whole batch.
type UploadAttachmentsResponse struct {
	Attachments []UploadedAttachment `json:"attachments"`
	Rejected    []string             `json:"rejected,omitempty"`
}
