package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/errors"
)

func TestCreateClientUseCase_Execute_Success(t *testing.T) {
	var saved *client.Client
	mockRepo := &mockClientRepository{
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			saved = c
			return nil
		},
	}

	useCase := NewCreateClientUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateClientCommand{
		CompanyName: "Acme Corp",
		ContactName: "Jane Doe",
		Email:       "jane@acme.test",
		Phone:       "0102030405",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ClientID)

	require.NotNil(t, saved)
	assert.Equal(t, "Acme Corp", saved.CompanyName())
	assert.True(t, saved.Active(), "new clients start active")
}

func TestCreateClientUseCase_Execute_ValidationError(t *testing.T) {
	useCase := NewCreateClientUseCase(&mockClientRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateClientCommand{
		CompanyName: "Acme Corp",
		// contact name and email missing
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateClientUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockClientRepository{
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			return stderrors.New("connection lost")
		},
	}

	useCase := NewCreateClientUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateClientCommand{
		ContactName: "Jane Doe",
		Email:       "jane@acme.test",
	})

	assert.Error(t, err)
}
