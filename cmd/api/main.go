package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/SamDTech/realtor-api/internal/api/http"
	"github.com/SamDTech/realtor-api/internal/api/http/handlers"
	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/config"
	"github.com/SamDTech/realtor-api/internal/events"
	"github.com/SamDTech/realtor-api/internal/observability"
	"github.com/SamDTech/realtor-api/internal/persistence"
	"github.com/SamDTech/realtor-api/internal/repository"
	"github.com/SamDTech/realtor-api/internal/service"
	"github.com/SamDTech/realtor-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	homeRepo := repository.NewHomeRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	homeService := service.NewHomeService(homeRepo, inquiryRepo, dispatcher)

	extractor := auth.NewIdentityExtractor(authService.TokenManager())
	guard := auth.NewGuard(userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService),
		Homes:     handlers.NewHomesHandler(homeService),
		Extractor: extractor,
		Guard:     guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
