package usecases

import (
	"context"

	"clientsolve/internal/domain/user"
	"clientsolve/internal/shared/errors"
	"clientsolve/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenGenerator issues the signed session token carried by the HTTP layer.
type TokenGenerator interface {
	Generate(userID, role, clientID string) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token    string
	UserID   string
	Username string
	Role     string
	ClientID string
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, err
	}
	// The same message for unknown accounts and bad passwords keeps the
	// response from leaking which emails exist.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !existing.Active() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.verifier.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(existing.ID(), existing.Role().String(), existing.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role().String())

	return &LoginResult{
		Token:    token,
		UserID:   existing.ID(),
		Username: existing.Username(),
		Role:     existing.Role().String(),
		ClientID: existing.ClientID(),
	}, nil
}
