package ticket

import (
	"context"

	vo "clientsolve/internal/domain/ticket/valueobjects"
)

// Filter narrows List results. Search matches case-insensitively against
// title, description and reference. Zero-value fields are ignored.
type Filter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	ClientID string
	Search   string
}

// Repository is the persistence boundary for the ticket aggregate. Update
// persists the whole aggregate including its embedded comment and attachment
// collections. FindByID and FindByReference return (nil, nil) when no record
// matches; mutators report whether the id was found.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) (bool, error)
	Delete(ctx context.Context, ticketID string) (bool, error)
	FindByID(ctx context.Context, ticketID string) (*Ticket, error)
	FindByReference(ctx context.Context, reference string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
}
