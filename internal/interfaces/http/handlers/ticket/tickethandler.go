package ticket

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clientsolve/internal/application/ticket/usecases"
	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/authorization"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	addCommentUC       usecases.AddCommentExecutor
	updateCommentUC    usecases.UpdateCommentExecutor
	deleteCommentUC    usecases.DeleteCommentExecutor
	addAttachmentUC    usecases.AddAttachmentExecutor
	deleteAttachmentUC usecases.DeleteAttachmentExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		updateTicketUC:     updateTicketUC,
		deleteTicketUC:     deleteTicketUC,
		getTicketUC:        getTicketUC,
		listTicketsUC:      listTicketsUC,
		addCommentUC:       addCommentUC,
		updateCommentUC:    updateCommentUC,
		deleteCommentUC:    deleteCommentUC,
		addAttachmentUC:    addAttachmentUC,
		deleteAttachmentUC: deleteAttachmentUC,
		logger:             logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Client-role callers always file tickets under their own client.
	clientID := req.ClientID
	if !authorization.IsAdmin(c) {
		clientID = authorization.ClientID(c)
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(clientID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	entity, err := h.loadViewableTicket(c, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketResponseFromEntity(entity, authorization.IsAdmin(c)))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		ClientID: c.Query("client_id"),
		Search:   c.Query("search"),
	}
	// Client-role callers only ever see their own client's tickets,
	// whatever filter they send.
	if !authorization.IsAdmin(c) {
		query.ClientID = authorization.ClientID(c)
	}

	entities, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketSummariesFromEntities(entities))
}

// ListByClient handles GET /clients/:id/tickets
func (h *TicketHandler) ListByClient(c *gin.Context) {
	entities, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		ClientID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketSummariesFromEntities(entities))
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ticketID := c.Param("id")
	if _, err := h.loadViewableTicket(c, ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Only admins can mark a comment internal.
	isInternal := req.IsInternal
	if !authorization.IsAdmin(c) {
		isInternal = false
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		UserID:     authorization.UserID(c),
		Content:    req.Content,
		IsInternal: isInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// UpdateComment handles PUT /tickets/:id/comments/:commentId
func (h *TicketHandler) UpdateComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		TicketID:  c.Param("id"),
		CommentID: c.Param("commentId"),
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /tickets/:id/comments/:commentId
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	result, err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		TicketID:  c.Param("id"),
		CommentID: c.Param("commentId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", result)
}

// UploadAttachments handles POST /tickets/:id/attachments. The form may carry
// several files; oversized ones are reported by name while the rest are
// stored.
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	ticketID := c.Param("id")
	if _, err := h.loadViewableTicket(c, ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "no files provided")
		return
	}

	response := UploadAttachmentsResponse{
		Attachments: make([]UploadedAttachment, 0, len(files)),
	}

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("failed to read %s", header.Filename))
			return
		}

		result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
			TicketID: ticketID,
			Name:     header.Filename,
			Size:     header.Size,
			MimeType: header.Header.Get("Content-Type"),
			Content:  file,
		})
		_ = file.Close()
		if err != nil {
			if errors.IsConstraintError(err) {
				response.Rejected = append(response.Rejected, header.Filename)
				continue
			}
			utils.ErrorResponseWithError(c, err)
			return
		}

		response.Attachments = append(response.Attachments, UploadedAttachment{
			ID:        result.AttachmentID,
			Name:      header.Filename,
			URL:       result.URL,
			CreatedAt: result.CreatedAt,
		})
	}

	if len(response.Attachments) == 0 && len(response.Rejected) > 0 {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("files exceed the maximum allowed size: %s", strings.Join(response.Rejected, ", ")))
		return
	}

	utils.CreatedResponse(c, response, "Attachments uploaded")
}

// DeleteAttachment handles DELETE /tickets/:id/attachments/:attachmentId
func (h *TicketHandler) DeleteAttachment(c *gin.Context) {
	result, err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		TicketID:     c.Param("id"),
		AttachmentID: c.Param("attachmentId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", result)
}

// loadViewableTicket fetches a ticket and applies the visibility rule. A
// ticket outside the caller's client scope reads as not found rather than
// forbidden.
func (h *TicketHandler) loadViewableTicket(c *gin.Context, ticketID string) (*ticket.Ticket, error) {
	entity, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
	})
	if err != nil {
		return nil, err
	}
	if !entity.CanBeViewedBy(authorization.Role(c), authorization.ClientID(c)) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return entity, nil
}
