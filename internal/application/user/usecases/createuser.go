package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	vo "clientsolve/internal/domain/user/valueobjects"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

// PasswordHasher abstracts the hashing collaborator so use cases never see
// plaintext persistence.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type CreateUserCommand struct {
	Username string
	Email    string
	Password string
	Role     string
	ClientID string
}

type CreateUserResult struct {
	UserID string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "role", cmd.Role)

	if len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("password is required")
	}

	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash, role, cmd.ClientID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID())

	return &CreateUserResult{UserID: newUser.ID()}, nil
}
