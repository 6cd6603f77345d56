package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/application/ticket/usecases"
	domainticket "clientsolve/internal/domain/ticket"
	vo "clientsolve/internal/domain/ticket/valueobjects"
	"clientsolve/internal/interfaces/http/handlers/testutil"
	"clientsolve/internal/shared/errors"
)

type mockCreateTicketUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, errors.NewInternalError("not implemented")
}

type mockGetTicketUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error)
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

type mockListTicketsUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) ([]*domainticket.Ticket, error)
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]*domainticket.Ticket, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

type mockAddCommentUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error)
}

func (m *mockAddCommentUC) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, errors.NewInternalError("not implemented")
}

type testDeps struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	addCommentUC   usecases.AddCommentExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		nil,
		nil,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.addCommentUC,
		nil,
		nil,
		nil,
		nil,
		testutil.NewMockLogger(),
	)
}

func storedTicket(t *testing.T, clientID string) *domainticket.Ticket {
	t.Helper()
	tk, err := domainticket.NewTicket("Printer down", "Nothing prints", vo.PriorityHigh, clientID)
	require.NoError(t, err)
	require.NoError(t, tk.SetReference("ST001"))
	return tk
}

func TestTicketHandler_CreateTicket_ClientRoleForcedToOwnClient(t *testing.T) {
	var captured usecases.CreateTicketCommand
	mockUC := &mockCreateTicketUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			captured = cmd
			return &usecases.CreateTicketResult{TicketID: "tk_1", Reference: "ST001", Status: "pending"}, nil
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Title:       "Printer down",
		Description: "Nothing prints",
		Priority:    "high",
		ClientID:    "cl_other",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetClientContext(c, "us_1", "cl_acme")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cl_acme", captured.ClientID, "the claimed client wins over the request body")
}

func TestTicketHandler_CreateTicket_AdminSuppliesClient(t *testing.T) {
	var captured usecases.CreateTicketCommand
	mockUC := &mockCreateTicketUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			captured = cmd
			return &usecases.CreateTicketResult{TicketID: "tk_1", Reference: "ST001", Status: "pending"}, nil
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Title:       "Printer down",
		Description: "Nothing prints",
		Priority:    "high",
		ClientID:    "cl_acme",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAdminContext(c, "us_admin")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cl_acme", captured.ClientID)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]string{"title": "only a title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAdminContext(c, "us_admin")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_GetTicket_OtherClientReadsAsNotFound(t *testing.T) {
	existing := storedTicket(t, "cl_acme")
	mockUC := &mockGetTicketUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
			return existing, nil
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tk_1", nil)
	testutil.SetURLParam(c, "id", existing.ID())
	testutil.SetClientContext(c, "us_1", "cl_globex")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_ClientNeverSeesInternalComments(t *testing.T) {
	existing := storedTicket(t, "cl_acme")

	public, err := domainticket.NewComment(existing.ID(), "us_1", "any update?", false)
	require.NoError(t, err)
	require.NoError(t, existing.AddComment(public))
	internal, err := domainticket.NewComment(existing.ID(), "us_admin", "client is on the legacy plan", true)
	require.NoError(t, err)
	require.NoError(t, existing.AddComment(internal))

	mockUC := &mockGetTicketUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
			return existing, nil
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tk_1", nil)
	testutil.SetURLParam(c, "id", existing.ID())
	testutil.SetClientContext(c, "us_1", "cl_acme")

	handler.GetTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "any update?")
	assert.NotContains(t, w.Body.String(), "legacy plan")
}

func TestTicketHandler_GetTicket_AdminSeesEverything(t *testing.T) {
	existing := storedTicket(t, "cl_acme")
	internal, err := domainticket.NewComment(existing.ID(), "us_admin", "client is on the legacy plan", true)
	require.NoError(t, err)
	require.NoError(t, existing.AddComment(internal))

	mockUC := &mockGetTicketUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
			return existing, nil
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tk_1", nil)
	testutil.SetURLParam(c, "id", existing.ID())
	testutil.SetAdminContext(c, "us_admin")

	handler.GetTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "legacy plan")
}

func TestTicketHandler_ListTickets_ClientScopeOverridesFilter(t *testing.T) {
	var captured usecases.ListTicketsQuery
	mockUC := &mockListTicketsUC{
		ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) ([]*domainticket.Ticket, error) {
			captured = query
			return nil, nil
		},
	}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"client_id": "cl_other", "status": "pending"})
	testutil.SetClientContext(c, "us_1", "cl_acme")

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cl_acme", captured.ClientID)
	assert.Equal(t, "pending", captured.Status)
}

func TestTicketHandler_AddComment_ClientCannotPostInternal(t *testing.T) {
	existing := storedTicket(t, "cl_acme")
	getUC := &mockGetTicketUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
			return existing, nil
		},
	}

	var captured usecases.AddCommentCommand
	addUC := &mockAddCommentUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
			captured = cmd
			return &usecases.AddCommentResult{CommentID: "cm_1"}, nil
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: getUC, addCommentUC: addUC})

	reqBody := AddCommentRequest{Content: "please hurry", IsInternal: true}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/tk_1/comments", reqBody)
	testutil.SetURLParam(c, "id", existing.ID())
	testutil.SetClientContext(c, "us_1", "cl_acme")

	handler.AddComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, captured.IsInternal, "client-role comments are always public")
	assert.Equal(t, "us_1", captured.UserID)
}

func TestTicketHandler_AddComment_UseCaseErrorMapsToStatus(t *testing.T) {
	existing := storedTicket(t, "cl_acme")
	getUC := &mockGetTicketUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*domainticket.Ticket, error) {
			return existing, nil
		},
	}
	addUC := &mockAddCommentUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
			return nil, errors.NewValidationError("content cannot be empty")
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: getUC, addCommentUC: addUC})

	reqBody := AddCommentRequest{Content: "x"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/tk_1/comments", reqBody)
	testutil.SetURLParam(c, "id", existing.ID())
	testutil.SetAdminContext(c, "us_admin")

	handler.AddComment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "content cannot be empty", resp.Error.Message)
}
