package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	vo "clientsolve/internal/domain/ticket/valueobjects"
	"clientsolve/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}
	dispatcher := &mockDispatcher{}
	gen := ticket.NewCounterReferenceGenerator(0)

	useCase := NewCreateTicketUseCase(mockRepo, gen, dispatcher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Login broken",
		Description: "Cannot sign in since this morning",
		Priority:    "high",
		ClientID:    "cl_acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "ST001", result.Reference)
	assert.Equal(t, vo.StatusPending.String(), result.Status)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, saved)
	assert.Equal(t, "ST001", saved.Reference(), "reference is assigned before the save")

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventTicketCreated, dispatcher.Published[0].GetEventType())
}

func TestCreateTicketUseCase_Execute_ValidationError(t *testing.T) {
	gen := ticket.NewCounterReferenceGenerator(0)
	dispatcher := &mockDispatcher{}

	useCase := NewCreateTicketUseCase(&mockTicketRepository{}, gen, dispatcher, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:    "no description",
		Priority: "high",
		ClientID: "cl_acme",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, dispatcher.Published, "nothing is published when the save never happens")

	ref, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ST001", ref, "no reference is consumed when validation fails")
}

func TestCreateTicketUseCase_Execute_PublishFailureDoesNotFailCreate(t *testing.T) {
	failing := &mockDispatcher{
		PublishFunc: func(event events.DomainEvent) error {
			return stderrors.New("dispatcher stopped")
		},
	}

	useCase := NewCreateTicketUseCase(
		&mockTicketRepository{},
		ticket.NewCounterReferenceGenerator(0),
		failing,
		&mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "t",
		Description: "d",
		Priority:    "low",
		ClientID:    "cl_acme",
	})
	require.NoError(t, err, "notification failures never fail the mutation")
	assert.NotEmpty(t, result.TicketID)
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return stderrors.New("connection lost")
		},
	}
	dispatcher := &mockDispatcher{}

	useCase := NewCreateTicketUseCase(mockRepo, ticket.NewCounterReferenceGenerator(0), dispatcher, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "t",
		Description: "d",
		Priority:    "low",
		ClientID:    "cl_acme",
	})

	require.Error(t, err)
	assert.Empty(t, dispatcher.Published)
}
