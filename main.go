package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carwash/config"
	"carwash/database"
	bookingRepo "carwash/database/repository/booking"
	"carwash/handlers"
	"carwash/metrics"
	"carwash/routes"
	"carwash/services/booking"
	"carwash/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: failed to load config: %v", err)
	}
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	repo, mongoClient := openBookingStore(rootCtx, cfg, logger)
	if mongoClient != nil {
		defer func() {
			if err := database.Disconnect(mongoClient); err != nil {
				logger.Error("main: failed to disconnect from MongoDB", zap.Error(err))
			}
		}()
	}

	// services.
	bookingService, err := booking.NewDefaultBookingService(repo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	monitor := utils.NewHealthMonitor(repo, 60*time.Second, logger)
	monitor.Start(rootCtx)

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService, logger),
		handlers.NewHealthHandler(monitor),
		gin.WrapH(promhttp.Handler()),
	)
	router := routes.NewRouter(handlerBundle, routes.Options{
		AllowedOrigin:     cfg.CORSOrigin,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	}, logger)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

// openBookingStore builds the repository selected by STORE_DRIVER. The mongo
// client is returned so main can disconnect it on shutdown.
func openBookingStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (bookingRepo.BookingRepository, *mongo.Client) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("main: using in-memory booking store; data is lost on restart")
		return bookingRepo.NewMemoryBookingRepo(), nil
	}

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	repo := bookingRepo.NewMongoBookingRepo(client.Database(cfg.DatabaseName).Collection(bookingRepo.CollectionName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: failed to create booking indexes", zap.Error(err))
	}
	return repo, client
}
