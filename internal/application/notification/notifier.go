// Package notification turns ticket lifecycle events into admin emails. It
// observes the event dispatcher rather than being called by the mutation
// path, so a broken mail setup can never fail a ticket operation.
package notification

import (
	"fmt"

	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/services/markdown"
)

// EmailSender delivers a single message. Implemented by the SMTP service.
type EmailSender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// Notifier emails the fixed admin address whenever a ticket is created or
// updated or receives a comment. Delivery failures are logged and dropped.
type Notifier struct {
	sender       EmailSender
	markdown     markdown.MarkdownService
	adminAddress string
	logger       logger.Interface
}

func NewNotifier(
	sender EmailSender,
	markdown markdown.MarkdownService,
	adminAddress string,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		sender:       sender,
		markdown:     markdown,
		adminAddress: adminAddress,
		logger:       logger,
	}
}

// Register subscribes the notifier to the ticket lifecycle events. Deletion
// emits no event, so nothing is sent for deleted tickets.
func (n *Notifier) Register(dispatcher events.Dispatcher) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketUpdated,
		ticket.EventCommentAdded,
	} {
		handler := events.NewSimpleEventHandler(eventType, n.handle)
		if err := dispatcher.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (n *Notifier) handle(event events.DomainEvent) error {
	var subject, htmlBody, plainBody string

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		subject, htmlBody, plainBody = n.renderCreated(e)
	case ticket.TicketUpdatedEvent:
		subject, htmlBody, plainBody = n.renderUpdated(e)
	case ticket.CommentAddedEvent:
		subject, htmlBody, plainBody = n.renderCommentAdded(e)
	default:
		n.logger.Warnw("unexpected event type", "event_type", event.GetEventType())
		return nil
	}

	if err := n.sender.Send(n.adminAddress, subject, htmlBody, plainBody); err != nil {
		// Swallowed on purpose: the mutation already committed.
		n.logger.Errorw("failed to send notification email",
			"error", err,
			"event_type", event.GetEventType(),
			"ticket_id", event.GetAggregateID(),
		)
	}
	return nil
}

func (n *Notifier) renderCreated(e ticket.TicketCreatedEvent) (string, string, string) {
	subject := fmt.Sprintf("[%s] New ticket: %s", e.Ticket.Reference, e.Ticket.Title)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New ticket %s</h2>
			<p><strong>%s</strong></p>
			<p>%s</p>
			<p>Priority: %s &mdash; Status: %s</p>
		</body>
		</html>
	`, e.Ticket.Reference, e.Ticket.Title, e.Ticket.Description, e.Ticket.Priority, e.Ticket.Status)

	plainBody := fmt.Sprintf(`New ticket %s

%s

%s

Priority: %s - Status: %s
`, e.Ticket.Reference, e.Ticket.Title, e.Ticket.Description, e.Ticket.Priority, e.Ticket.Status)

	return subject, htmlBody, plainBody
}

func (n *Notifier) renderUpdated(e ticket.TicketUpdatedEvent) (string, string, string) {
	subject := fmt.Sprintf("[%s] Ticket updated: %s", e.Ticket.Reference, e.Ticket.Title)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket %s updated</h2>
			<p><strong>%s</strong></p>
			<p>Priority: %s &mdash; Status: %s</p>
		</body>
		</html>
	`, e.Ticket.Reference, e.Ticket.Title, e.Ticket.Priority, e.Ticket.Status)

	plainBody := fmt.Sprintf(`Ticket %s updated

%s

Priority: %s - Status: %s
`, e.Ticket.Reference, e.Ticket.Title, e.Ticket.Priority, e.Ticket.Status)

	return subject, htmlBody, plainBody
}

func (n *Notifier) renderCommentAdded(e ticket.CommentAddedEvent) (string, string, string) {
	subject := fmt.Sprintf("[%s] New comment on: %s", e.Ticket.Reference, e.Ticket.Title)

	// Comments are written in markdown; render and sanitize before they go
	// into an email body.
	rendered, err := n.markdown.ToHTMLSanitized(e.Content)
	if err != nil {
		n.logger.Warnw("failed to render comment markdown", "error", err, "comment_id", e.CommentID)
		rendered = e.Content
	}

	kind := "comment"
	if e.IsInternal {
		kind = "internal note"
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New %s on ticket %s</h2>
			<p><strong>%s</strong></p>
			<div>%s</div>
		</body>
		</html>
	`, kind, e.Ticket.Reference, e.Ticket.Title, rendered)

	plainBody := fmt.Sprintf(`New %s on ticket %s

%s

%s
`, kind, e.Ticket.Reference, e.Ticket.Title, e.Content)

	return subject, htmlBody, plainBody
}
