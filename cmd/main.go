package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpctx "github.com/27Chinedu/Module13Assignment/internal/api/http/context"
	"github.com/27Chinedu/Module13Assignment/internal/api/http/router"
	httpServer "github.com/27Chinedu/Module13Assignment/internal/api/http/server"
	"github.com/27Chinedu/Module13Assignment/internal/blacklist"
	"github.com/27Chinedu/Module13Assignment/internal/config"
	"github.com/27Chinedu/Module13Assignment/internal/events"
	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
	"github.com/27Chinedu/Module13Assignment/internal/password"
	"github.com/27Chinedu/Module13Assignment/internal/repository/postgres"
	"github.com/27Chinedu/Module13Assignment/internal/server"
	"github.com/27Chinedu/Module13Assignment/internal/service"
	"github.com/27Chinedu/Module13Assignment/internal/telemetry/metric"
	"github.com/27Chinedu/Module13Assignment/internal/token"
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
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	var tokenBlacklist model.TokenBlacklist
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		tokenBlacklist = blacklist.NewRedis(client, logger)
	} else {
		memory := blacklist.NewMemory()
		defer memory.Close()
		tokenBlacklist = memory
	}

	var eventPublisher model.EventPublisher
	if cfg.Broker.URL != "" {
		publisher, err := events.NewPublisher(cfg.Broker.URL, logger)
		if err != nil {
			logger.Fatal("failed to connect to broker", "error", err)
		}
		defer publisher.Close()
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoop()
	}

	userRepo := postgres.NewUserRepository(db)
	calculationRepo := postgres.NewCalculationRepository(db)
	hasher := password.NewHasher(cfg.Password.BcryptCost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	authService := service.NewAuth(userRepo, hasher, tokenBlacklist, eventPublisher, logger, tokenManager)
	tokenService := service.NewTokenService(tokenManager, tokenBlacklist, logger)
	calculationService := service.NewCalculation(calculationRepo, logger)
	ctxMgr := httpctx.NewManager()
	metrics := metric.New()

	srv := registerHTTPServer(logger, authService, calculationService, tokenService, ctxMgr, db, metrics, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
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

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	calculationService *service.Calculation,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	db *postgres.Connection,
	metrics *metric.Metrics,
	addr string,
) *httpServer.HTTPServer {
	r := router.New(authService, calculationService, tokenService, ctxMgr, db, metrics, logger)
	e := r.Register()

	return httpServer.NewHTTPServer(e, addr)
}
