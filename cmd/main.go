package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/cookbook-server/internal/api/http/context"
	"github.com/dtroode/cookbook-server/internal/api/http/router"
	httpServer "github.com/dtroode/cookbook-server/internal/api/http/server"
	"github.com/dtroode/cookbook-server/internal/config"
	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/password"
	"github.com/dtroode/cookbook-server/internal/repository/postgres"
	"github.com/dtroode/cookbook-server/internal/server"
	"github.com/dtroode/cookbook-server/internal/service"
	storage "github.com/dtroode/cookbook-server/internal/storage/minio"
	"github.com/dtroode/cookbook-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	hasher := password.NewBcrypt(cfg.Password.BcryptCost)

	stores := db.Stores()
	tokenService := service.NewTokenService(tokenManager, db, cfg.JWT.RefreshTTL, logger)
	authService := service.NewAuth(stores, hasher, tokenService, logger)
	ingredientService := service.NewIngredient(stores, logger)
	recipeService := service.NewRecipe(stores, db, ingredientService, storageClient, logger)

	if slog.Level(cfg.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(
		router.Services{
			Auth:          authService,
			Authenticator: authService,
			Ingredients:   ingredientService,
			Recipes:       recipeService,
			Health:        db,
		},
		router.Options{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			MaxImageSize:   cfg.HTTP.MaxImageSize,
		},
		httpctx.NewManager(),
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address)

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
