package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/foodcourt/pkg/auth"
	"github.com/example/foodcourt/pkg/cart"
	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/config"
	"github.com/example/foodcourt/pkg/events"
	"github.com/example/foodcourt/pkg/imagestore"
	"github.com/example/foodcourt/pkg/mailer"
	"github.com/example/foodcourt/pkg/payment"
	"github.com/example/foodcourt/pkg/repository"
	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/example/foodcourt/pkg/user"
	"github.com/example/foodcourt/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting server",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// Document store
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoRepo.Close(context.Background())

	// Transient state store
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	defer redisRepo.Close()

	// Ping dependencies
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongoRepo.Ping(ctx); err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	logger.Info("MongoDB connected successfully")
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}
	cancel()

	// External collaborators
	provider := payment.NewStripeProvider(&cfg.Stripe)
	uploader, err := imagestore.NewCloudinaryUploader(&cfg.Cloudinary)
	if err != nil {
		logger.Fatal("Failed to init image uploader", zap.Error(err))
	}
	mail := mailer.NewSMTPSender(&cfg.SMTP)

	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("Kafka publisher enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	// Services
	tokens := auth.NewTokenManager(&cfg.JWT)
	userSvc := user.NewService(mongoRepo, mail, uploader, cfg.Frontend.URL, logger)
	restaurantSvc := restaurant.NewService(mongoRepo, uploader, publisher, logger)
	cartSvc := cart.NewService(redisRepo)
	checkoutSvc := checkout.NewService(mongoRepo, mongoRepo, redisRepo, provider, publisher, checkout.Config{
		ShippingCountries: cfg.Stripe.ShippingCountries,
		SuccessURL:        cfg.Frontend.URL + "/order/status",
		CancelURL:         cfg.Frontend.URL + "/cart",
	}, logger)

	srv := server.New(cfg, logger, tokens, userSvc, restaurantSvc, checkoutSvc, cartSvc, mongoRepo)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   cfg.Frontend.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: corsWrapper.Handler(srv.Handler()),
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
