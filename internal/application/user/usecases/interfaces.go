package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error)
}

type ToggleUserActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleUserActiveCommand) (*ToggleUserActiveResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*user.User, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*user.User, error)
}
