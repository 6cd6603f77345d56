package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
)

func storedClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient("Acme Corp", "Jane Doe", "jane@acme.test", "", "", "", "", "")
	require.NoError(t, err)
	return c
}

func TestUpdateClientUseCase_Execute_PartialMerge(t *testing.T) {
	existing := storedClient(t)

	var updated *client.Client
	mockRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, clientID string) (*client.Client, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c *client.Client) (bool, error) {
			updated = c
			return true, nil
		},
	}

	phone := "0600000000"
	useCase := NewUpdateClientUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateClientCommand{
		ClientID: existing.ID(),
		Phone:    &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), result.ClientID)

	require.NotNil(t, updated)
	assert.Equal(t, "0600000000", updated.Phone())
	assert.Equal(t, "Jane Doe", updated.ContactName(), "omitted fields keep their value")
}

func TestUpdateClientUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, clientID string) (*client.Client, error) {
			return nil, nil
		},
	}

	useCase := NewUpdateClientUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateClientCommand{ClientID: "cl_missing"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateClientUseCase_Execute_RejectsEmptyRequiredField(t *testing.T) {
	existing := storedClient(t)
	mockRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, clientID string) (*client.Client, error) {
			return existing, nil
		},
	}

	empty := ""
	useCase := NewUpdateClientUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateClientCommand{
		ClientID: existing.ID(),
		Email:    &empty,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteClientUseCase_Execute(t *testing.T) {
	mockRepo := &mockClientRepository{
		DeleteFunc: func(ctx context.Context, clientID string) (bool, error) {
			return clientID == "cl_known", nil
		},
	}

	useCase := NewDeleteClientUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteClientCommand{ClientID: "cl_known"})
	require.NoError(t, err)
	assert.Equal(t, "cl_known", result.ClientID)

	_, err = useCase.Execute(context.Background(), DeleteClientCommand{ClientID: "cl_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestToggleClientActiveUseCase_Execute(t *testing.T) {
	existing := storedClient(t)
	require.True(t, existing.Active())

	mockRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, clientID string) (*client.Client, error) {
			return existing, nil
		},
	}

	useCase := NewToggleClientActiveUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ToggleClientActiveCommand{ClientID: existing.ID()})

	require.NoError(t, err)
	assert.False(t, result.Active)
}
