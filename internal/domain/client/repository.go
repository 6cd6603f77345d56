package client

import "context"

// Filter narrows List results. Search matches case-insensitively against
// company name, contact name and email.
type Filter struct {
	Search string
	Active *bool
}

// Repository is the persistence boundary for client companies. FindByID
// returns (nil, nil) when the id is unknown; mutators report whether the id
// was found so callers can distinguish a no-op from a missing record.
type Repository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) (bool, error)
	Delete(ctx context.Context, clientID string) (bool, error)
	FindByID(ctx context.Context, clientID string) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, error)
}
