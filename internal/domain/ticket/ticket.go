// Package ticket holds the support ticket aggregate and its embedded
// comment and attachment collections.
package ticket

import (
	"fmt"
	"time"

	vo "clientsolve/internal/domain/ticket/valueobjects"
	"clientsolve/internal/shared/id"
)

type Ticket struct {
	id          string
	reference   string
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	// clientID references the owning client company. The reference is not
	// validated against the client store; deleting a client orphans its
	// tickets on purpose.
	clientID    string
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
	attachments []*Attachment
}

// NewTicket creates a ticket in pending status. The human-facing reference
// is assigned separately, exactly once, via SetReference.
func NewTicket(title, description string, priority vo.Priority, clientID string) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		id:          id.MustGenerateWithPrefix(id.PrefixTicket, id.DefaultLength),
		title:       title,
		description: description,
		status:      vo.StatusPending,
		priority:    priority,
		clientID:    clientID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
		attachments: []*Attachment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	ticketID, reference, title, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	clientID string,
	createdAt, updatedAt time.Time,
	comments []*Comment,
	attachments []*Attachment,
) (*Ticket, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("ticket reference is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	if comments == nil {
		comments = []*Comment{}
	}
	if attachments == nil {
		attachments = []*Attachment{}
	}

	return &Ticket{
		id:          ticketID,
		reference:   reference,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		clientID:    clientID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    comments,
		attachments: attachments,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Reference() string {
	return t.reference
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) ClientID() string {
	return t.clientID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

// SetReference assigns the human-facing reference. It can be set exactly
// once and never changes afterwards.
func (t *Ticket) SetReference(reference string) error {
	if len(t.reference) > 0 {
		return fmt.Errorf("ticket reference is already set")
	}
	if len(reference) == 0 {
		return fmt.Errorf("ticket reference cannot be empty")
	}
	t.reference = reference
	return nil
}

// Update holds a partial update: nil fields are left untouched. Status and
// priority accept any valid value at any time; there is no transition graph.
type Update struct {
	Title       *string
	Description *string
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	ClientID    *string
}

// Apply merges the supplied fields and refreshes updatedAt. An empty update
// still bumps updatedAt: every update call counts as a mutation.
func (t *Ticket) Apply(u Update) error {
	if u.Title != nil && len(*u.Title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if u.Description != nil && len(*u.Description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if u.Status != nil && !u.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *u.Status)
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *u.Priority)
	}
	if u.ClientID != nil && len(*u.ClientID) == 0 {
		return fmt.Errorf("client ID cannot be empty")
	}

	if u.Title != nil {
		t.title = *u.Title
	}
	if u.Description != nil {
		t.description = *u.Description
	}
	if u.Status != nil {
		t.status = *u.Status
	}
	if u.Priority != nil {
		t.priority = *u.Priority
	}
	if u.ClientID != nil {
		t.clientID = *u.ClientID
	}

	t.updatedAt = time.Now().UTC()
	return nil
}

// AddComment appends a comment in arrival order and refreshes updatedAt.
func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now().UTC()
	return nil
}

// UpdateComment replaces a comment's content in place and refreshes
// updatedAt. Returns false when no comment matches the id.
func (t *Ticket) UpdateComment(commentID, content string) (bool, error) {
	for _, c := range t.comments {
		if c.ID() == commentID {
			if err := c.updateContent(content); err != nil {
				return false, err
			}
			t.updatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

// DeleteComment removes a comment and refreshes updatedAt. Returns false
// when no comment matches the id.
func (t *Ticket) DeleteComment(commentID string) bool {
	for i, c := range t.comments {
		if c.ID() == commentID {
			t.comments = append(t.comments[:i], t.comments[i+1:]...)
			t.updatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// AddAttachment appends an attachment and refreshes updatedAt.
func (t *Ticket) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}

	t.attachments = append(t.attachments, attachment)
	t.updatedAt = time.Now().UTC()
	return nil
}

// DeleteAttachment removes an attachment and refreshes updatedAt. Returns
// false when no attachment matches the id.
func (t *Ticket) DeleteAttachment(attachmentID string) bool {
	for i, a := range t.attachments {
		if a.ID() == attachmentID {
			t.attachments = append(t.attachments[:i], t.attachments[i+1:]...)
			t.updatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// CanBeViewedBy reports whether a principal may see this ticket: admins see
// everything, client-role principals only their own client's tickets.
func (t *Ticket) CanBeViewedBy(role string, clientID string) bool {
	if role == "admin" {
		return true
	}
	return t.clientID == clientID
}

// VisibleComments returns the comments a viewer may see. Internal comments
// are hidden from non-admin viewers.
func (t *Ticket) VisibleComments(isAdmin bool) []*Comment {
	if isAdmin {
		return t.Comments()
	}

	visible := make([]*Comment, 0, len(t.comments))
	for _, c := range t.comments {
		if !c.IsInternal() {
			visible = append(visible, c)
		}
	}
	return visible
}
