package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"clientsolve/internal/infrastructure/config"
	"clientsolve/internal/infrastructure/database"
	"clientsolve/internal/infrastructure/persistence"
	"clientsolve/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  `Create or update the database tables for the configured driver. The memory driver needs no migration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

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
		log.Infow("memory driver configured, nothing to migrate")
		return nil
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

	log.Infow("running migrations", "driver", cfg.Database.Driver)

	if err := persistence.AutoMigrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}
