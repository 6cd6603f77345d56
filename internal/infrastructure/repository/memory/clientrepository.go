// Package memory provides the in-memory reference implementation of the
// domain repositories: ordered slices, insertion order preserved, linear
// filters. A mutex guards each store because the HTTP surface serves
// requests from multiple goroutines.
package memory

import (
	"context"
	"strings"
	"sync"

	"clientsolve/internal/domain/client"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients []*client.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: []*client.Client{}}
}

func cloneClient(c *client.Client) *client.Client {
	cp, err := client.ReconstructClient(
		c.ID(), c.CompanyName(), c.ContactName(), c.Email(), c.Phone(),
		c.Address(), c.Siret(), c.IBAN(), c.BIC(), c.Active(),
	)
	if err != nil {
		// Reconstruction of an already-valid record cannot fail.
		panic(err)
	}
	return cp
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = append(r.clients, cloneClient(c))
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.clients {
		if existing.ID() == c.ID() {
			r.clients[i] = cloneClient(c)
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientRepository) Delete(ctx context.Context, clientID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.clients {
		if existing.ID() == clientID {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, clientID string) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.clients {
		if existing.ID() == clientID {
			return cloneClient(existing), nil
		}
	}
	return nil, nil
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*client.Client, 0, len(r.clients))
	search := strings.ToLower(filter.Search)

	for _, c := range r.clients {
		if filter.Active != nil && c.Active() != *filter.Active {
			continue
		}
		if search != "" && !clientMatches(c, search) {
			continue
		}
		result = append(result, cloneClient(c))
	}
	return result, nil
}

func clientMatches(c *client.Client, search string) bool {
	return strings.Contains(strings.ToLower(c.CompanyName()), search) ||
		strings.Contains(strings.ToLower(c.ContactName()), search) ||
		strings.Contains(strings.ToLower(c.Email()), search)
}
