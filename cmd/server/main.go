package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"smarthome-api/internal/config"
	"smarthome-api/internal/domain"
	apphttp "smarthome-api/internal/http"
	"smarthome-api/internal/repository"
	"smarthome-api/internal/repository/sqlite"
	"smarthome-api/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	sensorRepo := sqlite.NewSensorRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := sensorRepo.Init(ctx); err != nil {
		logger.Fatalf("init sensor repository: %v", err)
	}

	if err := seedUser(ctx, userRepo, cfg); err != nil {
		logger.Fatalf("seed user: %v", err)
	}

	secret := []byte(cfg.Auth.JWTSecret)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	authService := service.NewAuthService(userRepo, secret, tokenTTL)
	sensorService := service.NewSensorService(sensorRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, sensorService, secret, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
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

// seedUser provisions the configured login account if it does not exist yet.
// Accounts are otherwise created out of band; there is no registration
// endpoint.
func seedUser(ctx context.Context, users repository.UserRepository, cfg config.Config) error {
	username := strings.TrimSpace(cfg.Auth.SeedUsername)
	if username == "" {
		return nil
	}

	if _, err := users.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return users.Create(ctx, &domain.User{
		Username: username,
		Password: cfg.Auth.SeedPassword,
	})
}
