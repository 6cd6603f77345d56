package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/domain/ticket"
	vo "clientsolve/internal/domain/ticket/valueobjects"
)

func newStoredTicket(t *testing.T, repo *TicketRepository, gen ticket.ReferenceGenerator, title, clientID string, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	ctx := context.Background()

	tk, err := ticket.NewTicket(title, "details for "+title, priority, clientID)
	require.NoError(t, err)

	ref, err := gen.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, tk.SetReference(ref))
	require.NoError(t, repo.Save(ctx, tk))
	return tk
}

func TestTicketRepository_ReferenceSequence(t *testing.T) {
	repo := NewTicketRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	for i := 1; i <= 3; i++ {
		tk := newStoredTicket(t, repo, gen, fmt.Sprintf("issue %d", i), "cl_acme", vo.PriorityNormal)
		assert.Equal(t, fmt.Sprintf("ST%03d", i), tk.Reference())
	}

	got, err := repo.FindByReference(context.Background(), "ST002")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "issue 2", got.Title())
}

func TestTicketRepository_ReferenceSeedSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	newStoredTicket(t, repo, gen, "one", "cl_acme", vo.PriorityLow)
	newStoredTicket(t, repo, gen, "two", "cl_acme", vo.PriorityLow)

	// A fresh generator seeded from the persisted count continues the
	// sequence instead of restarting at ST001.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	restarted := ticket.NewCounterReferenceGenerator(count)

	tk := newStoredTicket(t, repo, restarted, "three", "cl_acme", vo.PriorityLow)
	assert.Equal(t, "ST003", tk.Reference())
}

func TestTicketRepository_DeleteThenQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	tk := newStoredTicket(t, repo, gen, "short lived", "cl_acme", vo.PriorityLow)

	found, err := repo.Delete(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	found, err = repo.Delete(ctx, tk.ID())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTicketRepository_List_ByClientOrderedSubset(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	first := newStoredTicket(t, repo, gen, "acme one", "cl_acme", vo.PriorityLow)
	newStoredTicket(t, repo, gen, "globex one", "cl_globex", vo.PriorityLow)
	second := newStoredTicket(t, repo, gen, "acme two", "cl_acme", vo.PriorityHigh)

	got, err := repo.List(ctx, ticket.Filter{ClientID: "cl_acme"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID(), got[0].ID())
	assert.Equal(t, second.ID(), got[1].ID())

	got, err = repo.List(ctx, ticket.Filter{ClientID: "cl_unknown"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTicketRepository_List_StatusAndPriorityFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	tk := newStoredTicket(t, repo, gen, "urgent outage", "cl_acme", vo.PriorityUrgent)
	newStoredTicket(t, repo, gen, "minor nit", "cl_acme", vo.PriorityLow)

	resolved := vo.StatusResolved
	require.NoError(t, tk.Apply(ticket.Update{Status: &resolved}))
	found, err := repo.Update(ctx, tk)
	require.NoError(t, err)
	require.True(t, found)

	got, err := repo.List(ctx, ticket.Filter{Status: &resolved})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tk.ID(), got[0].ID())

	urgent := vo.PriorityUrgent
	got, err = repo.List(ctx, ticket.Filter{Priority: &urgent})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tk.ID(), got[0].ID())
}

func TestTicketRepository_OrphansSurviveClientDeletion(t *testing.T) {
	ctx := context.Background()
	tickets := NewTicketRepository()
	clients := NewClientRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	c := newStoredClient(t, clients, "Acme Corp", "Jane", "jane@acme.test")
	tk := newStoredTicket(t, tickets, gen, "pre-deletion issue", c.ID(), vo.PriorityNormal)

	found, err := clients.Delete(ctx, c.ID())
	require.NoError(t, err)
	require.True(t, found)

	got, err := tickets.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID(), got.ClientID())
}

// Full lifecycle against the in-memory stores: create a client, open a
// ticket for it, converse on the ticket, resolve it, and verify the
// client-facing view along the way.
func TestTicketRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	tickets := NewTicketRepository()
	clients := NewClientRepository()
	gen := ticket.NewCounterReferenceGenerator(0)

	acme := newStoredClient(t, clients, "Acme Corp", "Jane Doe", "jane@acme.test")
	tk := newStoredTicket(t, tickets, gen, "Invoices page times out", acme.ID(), vo.PriorityHigh)
	assert.Equal(t, "ST001", tk.Reference())

	loaded, err := tickets.FindByID(ctx, tk.ID())
	require.NoError(t, err)

	question, err := ticket.NewComment(loaded.ID(), "us_jane", "It started after the last deploy", false)
	require.NoError(t, err)
	require.NoError(t, loaded.AddComment(question))

	note, err := ticket.NewComment(loaded.ID(), "us_admin", "query plan regressed, fixing the index", true)
	require.NoError(t, err)
	require.NoError(t, loaded.AddComment(note))

	inProgress := vo.StatusInProgress
	require.NoError(t, loaded.Apply(ticket.Update{Status: &inProgress}))

	found, err := tickets.Update(ctx, loaded)
	require.NoError(t, err)
	require.True(t, found)

	persisted, err := tickets.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, persisted.Comments(), 2)
	assert.Equal(t, vo.StatusInProgress, persisted.Status())

	// The client sees the public comment only.
	clientView := persisted.VisibleComments(false)
	require.Len(t, clientView, 1)
	assert.Equal(t, question.ID(), clientView[0].ID())

	resolved := vo.StatusResolved
	require.NoError(t, persisted.Apply(ticket.Update{Status: &resolved}))
	found, err = tickets.Update(ctx, persisted)
	require.NoError(t, err)
	require.True(t, found)

	final, err := tickets.FindByReference(ctx, "ST001")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, final.Status())
}
