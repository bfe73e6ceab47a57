package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tusarkanta004/skill-swap-platform/internal/config"
	apphttp "github.com/tusarkanta004/skill-swap-platform/internal/http"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository/memory"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository/sqlite"
	"github.com/tusarkanta004/skill-swap-platform/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, swapRepo, cleanup, err := buildRepositories(cfg)
	if err != nil {
		logger.Fatalf("setup repositories: %v", err)
	}
	defer cleanup()

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := swapRepo.Init(ctx); err != nil {
		logger.Fatalf("init swap request repository: %v", err)
	}

	if cfg.Database.Seed {
		seeded, err := seedUsers(ctx, userRepo)
		if err != nil {
			logger.Fatalf("seed users: %v", err)
		}
		if seeded > 0 {
			logger.Infof("seeded %d demo users", seeded)
		}
	}

	userService := service.NewUserService(userRepo)
	swapService := service.NewSwapService(swapRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(userService, swapService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s (store: %s)", cfg.Server.Addr, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(cfg config.Config) (repository.UserRepository, repository.SwapRequestRepository, func(), error) {
	if cfg.Database.Driver == config.DriverSQLite {
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		cleanup := func() { _ = db.Close() }
		return sqlite.NewUserRepository(db), sqlite.NewSwapRequestRepository(db), cleanup, nil
	}
	return memory.NewUserRepository(), memory.NewSwapRequestRepository(), func() {}, nil
}

// seedUsers inserts the demo profiles, skipping any whose email is already
// present so a persistent store is only seeded once.
func seedUsers(ctx context.Context, users repository.UserRepository) (int, error) {
	seeded := 0
	for _, user := range memory.SeedUsers() {
		_, err := users.GetByEmail(ctx, user.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return seeded, err
		}
		if _, err := users.Create(ctx, &user); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
