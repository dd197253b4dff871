package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usta_backend/internal/auth"
	"usta_backend/internal/config"
	"usta_backend/internal/database"
	"usta_backend/internal/handlers"
	"usta_backend/internal/logger"
	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/routes"
	"usta_backend/internal/services"
	"usta_backend/internal/workers"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires configuration, database, services and the HTTP server, then
// blocks until shutdown.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret)

	// TranslateError maps driver-level unique violations to
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	sc := services.NewServiceContainer(db)
	h := handlers.NewAppHandlers(sc)
	router := routes.SetupRouter(db, h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	statsWorker := workers.NewStatsWorker(sc.Stats, time.Duration(cfg.Stats.RefreshInterval)*time.Hour)
	go statsWorker.Run(ctx)

	tokenCleaner := workers.NewTokenCleaner(db, repositories.NewUserRepository(), time.Hour)
	go tokenCleaner.Run(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no such user exists yet.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	if _, err := userRepo.FindByEmail(db, email); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		Roles:        pq.StringArray{string(models.UserRoleAdmin)},
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}
	logger.Info("admin account created", "email", email)
	return nil
}
