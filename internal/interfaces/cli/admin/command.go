// Package admin provides the bootstrap command that creates the first admin
// account. Every other operation requires an authenticated admin, so a fresh
// deployment starts here.
package admin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	userusecases "clientsolve/internal/application/user/usecases"
	infraauth "clientsolve/internal/infrastructure/auth"
	"clientsolve/internal/infrastructure/config"
	"clientsolve/internal/infrastructure/database"
	"clientsolve/internal/infrastructure/persistence"
	"clientsolve/internal/infrastructure/repository"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/utils"
)

var (
	env      string
	username string
	emailArg string
	password string
)

// accountParams validates the flag values with the same rules the HTTP layer
// applies to account creation.
type accountParams struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  `Create an admin account directly in the configured database, bypassing the HTTP API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username of the admin account (required)")
	cmd.Flags().StringVarP(&emailArg, "email", "m", "", "Email of the admin account (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password of the admin account (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Database.Driver == "memory" {
		return fmt.Errorf("the memory driver keeps no state between runs; configure sqlite or mysql first")
	}

	if err := utils.ValidateStruct(accountParams{
		Username: username,
		Email:    emailArg,
		Password: password,
	}); err != nil {
		return err
	}

	db, err := database.New(&cfg.Database, log.Named("database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := persistence.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	createUser := userusecases.NewCreateUserUseCase(userRepo, hasher, log)

	result, err := createUser.Execute(context.Background(), userusecases.CreateUserCommand{
		Username: username,
		Email:    emailArg,
		Password: password,
		Role:     "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Infow("admin account created", "user_id", result.UserID, "email", emailArg)
	fmt.Printf("Admin account %s created (id %s)\n", emailArg, result.UserID)
	return nil
}
