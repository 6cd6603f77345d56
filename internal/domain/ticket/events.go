package ticket

import (
	"time"

	"clientsolve/internal/domain/shared/events"
)

// Event types consumed by the notification layer. Deletions do not emit
// events.
const (
	EventTicketCreated = "ticket.created"
	EventTicketUpdated = "ticket.updated"
	EventCommentAdded  = "ticket.comment_added"
)

// Snapshot carries the ticket fields the notification templates need,
// captured at commit time so later mutations do not leak into the message.
type Snapshot struct {
	ID          string
	Reference   string
	Title       string
	Description string
	Status      string
	Priority    string
	ClientID    string
}

func snapshotOf(t *Ticket) Snapshot {
	return Snapshot{
		ID:          t.ID(),
		Reference:   t.Reference(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		ClientID:    t.ClientID(),
	}
}

type TicketCreatedEvent struct {
	events.BaseEvent
	Ticket Snapshot
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventTicketCreated,
			OccurredAt:  time.Now().UTC(),
		},
		Ticket: snapshotOf(t),
	}
}

type TicketUpdatedEvent struct {
	events.BaseEvent
	Ticket Snapshot
}

func NewTicketUpdatedEvent(t *Ticket) TicketUpdatedEvent {
	return TicketUpdatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventTicketUpdated,
			OccurredAt:  time.Now().UTC(),
		},
		Ticket: snapshotOf(t),
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	Ticket     Snapshot
	CommentID  string
	Content    string
	IsInternal bool
}

func NewCommentAddedEvent(t *Ticket, c *Comment) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventCommentAdded,
			OccurredAt:  time.Now().UTC(),
		},
		Ticket:     snapshotOf(t),
		CommentID:  c.ID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
	}
}
