package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	authusecases "clientsolve/internal/application/auth/usecases"
	clientusecases "clientsolve/internal/application/client/usecases"
	"clientsolve/internal/application/notification"
	ticketusecases "clientsolve/internal/application/ticket/usecases"
	userusecases "clientsolve/internal/application/user/usecases"
	"clientsolve/internal/domain/client"
	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/domain/user"
	infraauth "clientsolve/internal/infrastructure/auth"
	"clientsolve/internal/infrastructure/config"
	"clientsolve/internal/infrastructure/database"
	"clientsolve/internal/infrastructure/email"
	"clientsolve/internal/infrastructure/persistence"
	"clientsolve/internal/infrastructure/repository"
	"clientsolve/internal/infrastructure/repository/memory"
	"clientsolve/internal/infrastructure/storage"
	httprouter "clientsolve/internal/interfaces/http"
	authhandlers "clientsolve/internal/interfaces/http/handlers/auth"
	clienthandlers "clientsolve/internal/interfaces/http/handlers/client"
	tickethandlers "clientsolve/internal/interfaces/http/handlers/ticket"
	userhandlers "clientsolve/internal/interfaces/http/handlers/user"
	"clientsolve/internal/interfaces/http/middleware"
	"clientsolve/internal/shared/goroutine"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/services/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ClientSolve HTTP server with the configured persistence and notification backends.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "database_driver", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	ctx := context.Background()

	var (
		clientRepo   client.Repository
		userRepo     user.Repository
		ticketRepo   ticket.Repository
		referenceGen *ticket.CounterReferenceGenerator
	)

	switch cfg.Database.Driver {
	case "memory":
		memTicketRepo := memory.NewTicketRepository()
		clientRepo = memory.NewClientRepository()
		userRepo = memory.NewUserRepository()
		ticketRepo = memTicketRepo

		count, err := memTicketRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed reference generator: %w", err)
		}
		referenceGen = ticket.NewCounterReferenceGenerator(count)

	default:
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

		clientRepo = repository.NewClientRepository(db)
		userRepo = repository.NewUserRepository(db)
		ticketRepo = repository.NewTicketRepository(db)

		referenceGen, err = repository.SeedReferenceGenerator(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to seed reference generator: %w", err)
		}
	}

	var blobStore ticketusecases.AttachmentStore
	if cfg.Storage.Driver == "s3" {
		s3Store, err := storage.NewS3BlobStore(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		blobStore = s3Store
	} else {
		blobStore = storage.NewMemoryBlobStore(cfg.Storage.MaxUploadBytes)
	}

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()

	if cfg.Email.Enabled {
		sender := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.Host,
			Port:        cfg.Email.Port,
			Username:    cfg.Email.Username,
			Password:    cfg.Email.Password,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
		notifier := notification.NewNotifier(sender, markdown.NewMarkdownService(), cfg.Email.AdminAddress, log.Named("notifier"))
		if err := notifier.Register(dispatcher); err != nil {
			return fmt.Errorf("failed to register notifier: %w", err)
		}
		log.Infow("email notifications enabled", "admin_address", cfg.Email.AdminAddress)
	} else {
		log.Infow("email notifications disabled")
	}

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpHours)

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		log,
	)
	clientHandler := clienthandlers.NewClientHandler(
		clientusecases.NewCreateClientUseCase(clientRepo, log),
		clientusecases.NewUpdateClientUseCase(clientRepo, log),
		clientusecases.NewDeleteClientUseCase(clientRepo, log),
		clientusecases.NewToggleClientActiveUseCase(clientRepo, log),
		clientusecases.NewGetClientUseCase(clientRepo, log),
		clientusecases.NewListClientsUseCase(clientRepo, log),
		log,
	)
	userHandler := userhandlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewUpdateUserUseCase(userRepo, hasher, log),
		userusecases.NewDeleteUserUseCase(userRepo, log),
		userusecases.NewToggleUserActiveUseCase(userRepo, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		log,
	)
	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, referenceGen, dispatcher, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, dispatcher, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewAddCommentUseCase(ticketRepo, dispatcher, log),
		ticketusecases.NewUpdateCommentUseCase(ticketRepo, log),
		ticketusecases.NewDeleteCommentUseCase(ticketRepo, log),
		ticketusecases.NewAddAttachmentUseCase(ticketRepo, blobStore, log),
		ticketusecases.NewDeleteAttachmentUseCase(ticketRepo, blobStore, log),
		log,
	)

	router := httprouter.NewRouter(&httprouter.RouterConfig{
		AuthHandler:    authHandler,
		ClientHandler:  clientHandler,
		UserHandler:    userHandler,
		TicketHandler:  ticketHandler,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, log.Named("auth")),
		Logger:         log.Named("http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server starting", "address", addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("failed to start server", "error", err)
			os.Exit(1)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
