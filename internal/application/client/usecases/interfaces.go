package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error)
}

type DeleteClientExecutor interface {
	Execute(ctx context.Context, cmd DeleteClientCommand) (*DeleteClientResult, error)
}

type ToggleClientActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleClientActiveCommand) (*ToggleClientActiveResult, error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, query GetClientQuery) (*client.Client, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) ([]*client.Client, error)
}
