package ticket

import (
	"fmt"
	"time"

	"clientsolve/internal/shared/id"
)

// Comment is owned exclusively by its parent ticket and cannot outlive it.
type Comment struct {
	id         string
	ticketID   string
	userID     string
	content    string
	isInternal bool
	createdAt  time.Time
}

func NewComment(ticketID, userID, content string, isInternal bool) (*Comment, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}

	return &Comment{
		id:         id.MustGenerateWithPrefix(id.PrefixComment, id.DefaultLength),
		ticketID:   ticketID,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructComment(commentID, ticketID, userID, content string, isInternal bool, createdAt time.Time) (*Comment, error) {
	if len(commentID) == 0 {
		return nil, fmt.Errorf("comment ID is required")
	}
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:         commentID,
		ticketID:   ticketID,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) TicketID() string {
	return c.ticketID
}

func (c *Comment) UserID() string {
	return c.userID
}

func (c *Comment) Content() string {
	return c.content
}

// IsInternal reports whether the comment is hidden from client-role viewers.
func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) updateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	c.content = content
	return nil
}
