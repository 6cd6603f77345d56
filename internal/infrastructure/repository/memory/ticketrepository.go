package memory

import (
	"context"
	"strings"
	"sync"

	"clientsolve/internal/domain/ticket"
)

type TicketRepository struct {
	mu      sync.RWMutex
	tickets []*ticket.Ticket
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{tickets: []*ticket.Ticket{}}
}

// Count returns the number of stored tickets. Used to seed the reference
// counter at startup.
func (r *TicketRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets), nil
}

func cloneTicket(t *ticket.Ticket) *ticket.Ticket {
	comments := make([]*ticket.Comment, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		cc, err := ticket.ReconstructComment(
			c.ID(), c.TicketID(), c.UserID(), c.Content(), c.IsInternal(), c.CreatedAt(),
		)
		if err != nil {
			panic(err)
		}
		comments = append(comments, cc)
	}

	attachments := make([]*ticket.Attachment, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		ca, err := ticket.ReconstructAttachment(
			a.ID(), a.Name(), a.Size(), a.MimeType(), a.URL(), a.CreatedAt(),
		)
		if err != nil {
			panic(err)
		}
		attachments = append(attachments, ca)
	}

	cp, err := ticket.ReconstructTicket(
		t.ID(), t.Reference(), t.Title(), t.Description(),
		t.Status(), t.Priority(), t.ClientID(),
		t.CreatedAt(), t.UpdatedAt(),
		comments, attachments,
	)
	if err != nil {
		panic(err)
	}
	return cp
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = append(r.tickets, cloneTicket(t))
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tickets {
		if existing.ID() == t.ID() {
			r.tickets[i] = cloneTicket(t)
			return true, nil
		}
	}
	return false, nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tickets {
		if existing.ID() == ticketID {
			// Embedded comments and attachments go with the ticket.
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.tickets {
		if existing.ID() == ticketID {
			return cloneTicket(existing), nil
		}
	}
	return nil, nil
}

func (r *TicketRepository) FindByReference(ctx context.Context, reference string) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.tickets {
		if existing.Reference() == reference {
			return cloneTicket(existing), nil
		}
	}
	return nil, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ticket.Ticket, 0, len(r.tickets))
	search := strings.ToLower(filter.Search)

	for _, t := range r.tickets {
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority() != *filter.Priority {
			continue
		}
		if filter.ClientID != "" && t.ClientID() != filter.ClientID {
			continue
		}
		if search != "" && !ticketMatches(t, search) {
			continue
		}
		result = append(result, cloneTicket(t))
	}
	return result, nil
}

func ticketMatches(t *ticket.Ticket, search string) bool {
	return strings.Contains(strings.ToLower(t.Title()), search) ||
		strings.Contains(strings.ToLower(t.Description()), search) ||
		strings.Contains(strings.ToLower(t.Reference()), search)
}
