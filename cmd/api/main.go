package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/client"
	"storefront-backend/internal/config"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/server"
	"storefront-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log)

	db := client.InitDBClient(cfg.DatabaseURL)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	savedCardRepo := repository.NewSavedCardRepository(db)

	userService := service.NewUserService(userRepo)
	checkoutService := service.NewCheckoutService(db, orderRepo, paymentRepo, productRepo)
	orderService := service.NewOrderService(db, orderRepo)
	paymentService := service.NewPaymentService(db, orderRepo, paymentRepo)
	addressService := service.NewAddressService(db, addressRepo)
	savedCardService := service.NewSavedCardService(db, savedCardRepo)

	srv := server.NewServer(
		cfg.Auth.JWTSecret,
		checkoutService,
		orderService,
		paymentService,
		addressService,
		savedCardService,
		userService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info().Str("addr", serverAddr).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
