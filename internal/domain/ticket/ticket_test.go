package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "clientsolve/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Login broken", "Cannot sign in since this morning", vo.PriorityHigh, "cl_acme")
	require.NoError(t, err)
	require.NoError(t, tk.SetReference("ST001"))
	return tk
}

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("Login broken", "Cannot sign in", vo.PriorityHigh, "cl_acme")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tk.ID(), "tk_"))
	assert.Equal(t, vo.StatusPending, tk.Status())
	assert.Empty(t, tk.Reference(), "reference is assigned by the store, not the constructor")
	assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
	assert.Empty(t, tk.Comments())
	assert.Empty(t, tk.Attachments())
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    vo.Priority
		clientID    string
	}{
		{"missing title", "", "desc", vo.PriorityLow, "cl_acme"},
		{"missing description", "title", "", vo.PriorityLow, "cl_acme"},
		{"invalid priority", "title", "desc", vo.Priority("medium"), "cl_acme"},
		{"missing client id", "title", "desc", vo.PriorityLow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.description, tt.priority, tt.clientID)
			assert.Error(t, err)
		})
	}
}

func TestTicket_SetReference_Once(t *testing.T) {
	tk, err := NewTicket("t", "d", vo.PriorityLow, "cl_acme")
	require.NoError(t, err)

	require.NoError(t, tk.SetReference("ST007"))
	assert.Error(t, tk.SetReference("ST008"), "reference never changes once assigned")
	assert.Equal(t, "ST007", tk.Reference())
}

func TestTicket_Apply_EmptyUpdateStillBumpsUpdatedAt(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, tk.Apply(Update{}))

	assert.True(t, tk.UpdatedAt().After(before))
	assert.Equal(t, "Login broken", tk.Title())
}

func TestTicket_Apply_StatusHasNoTransitionGraph(t *testing.T) {
	tk := newTestTicket(t)

	// Straight from pending to closed, then back: any valid value goes.
	closed := vo.StatusClosed
	require.NoError(t, tk.Apply(Update{Status: &closed}))
	assert.Equal(t, vo.StatusClosed, tk.Status())

	pending := vo.StatusPending
	require.NoError(t, tk.Apply(Update{Status: &pending}))
	assert.Equal(t, vo.StatusPending, tk.Status())

	bogus := vo.TicketStatus("archived")
	assert.Error(t, tk.Apply(Update{Status: &bogus}))
}

func TestTicket_AddComment(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	c, err := NewComment(tk.ID(), "us_admin", "Looking into it", true)
	require.NoError(t, err)
	require.NoError(t, tk.AddComment(c))

	require.Len(t, tk.Comments(), 1)
	assert.True(t, tk.UpdatedAt().After(before))
}

func TestTicket_AddComment_RejectsForeignComment(t *testing.T) {
	tk := newTestTicket(t)

	c, err := NewComment("tk_other", "us_admin", "wrong parent", false)
	require.NoError(t, err)
	assert.Error(t, tk.AddComment(c))
}

func TestTicket_UpdateComment(t *testing.T) {
	tk := newTestTicket(t)
	c, err := NewComment(tk.ID(), "us_admin", "first draft", false)
	require.NoError(t, err)
	require.NoError(t, tk.AddComment(c))

	before := tk.UpdatedAt()
	time.Sleep(2 * time.Millisecond)

	found, err := tk.UpdateComment(c.ID(), "final wording")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "final wording", tk.Comments()[0].Content())
	assert.True(t, tk.UpdatedAt().After(before))

	found, err = tk.UpdateComment("cm_missing", "whatever")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTicket_DeleteComment(t *testing.T) {
	tk := newTestTicket(t)
	c1, _ := NewComment(tk.ID(), "us_a", "one", false)
	c2, _ := NewComment(tk.ID(), "us_b", "two", false)
	require.NoError(t, tk.AddComment(c1))
	require.NoError(t, tk.AddComment(c2))

	assert.True(t, tk.DeleteComment(c1.ID()))
	require.Len(t, tk.Comments(), 1)
	assert.Equal(t, c2.ID(), tk.Comments()[0].ID())

	assert.False(t, tk.DeleteComment("cm_missing"))
}

func TestTicket_Attachments(t *testing.T) {
	tk := newTestTicket(t)

	a, err := NewAttachment("report.pdf", 1024, "application/pdf", "https://blobs/report.pdf")
	require.NoError(t, err)
	require.NoError(t, tk.AddAttachment(a))
	require.Len(t, tk.Attachments(), 1)

	assert.True(t, tk.DeleteAttachment(a.ID()))
	assert.Empty(t, tk.Attachments())
	assert.False(t, tk.DeleteAttachment(a.ID()))
}

func TestTicket_VisibleComments(t *testing.T) {
	tk := newTestTicket(t)
	public, _ := NewComment(tk.ID(), "us_client", "anything new?", false)
	internal, _ := NewComment(tk.ID(), "us_admin", "customer is on legacy plan", true)
	require.NoError(t, tk.AddComment(public))
	require.NoError(t, tk.AddComment(internal))

	assert.Len(t, tk.VisibleComments(true), 2)

	visible := tk.VisibleComments(false)
	require.Len(t, visible, 1)
	assert.False(t, visible[0].IsInternal())
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t)

	assert.True(t, tk.CanBeViewedBy("admin", ""))
	assert.True(t, tk.CanBeViewedBy("client", "cl_acme"))
	assert.False(t, tk.CanBeViewedBy("client", "cl_other"))
}
