package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"socialmedia/internal/api"
	"socialmedia/internal/config"
	"socialmedia/internal/logger"
	"socialmedia/internal/repository"
	"socialmedia/internal/service"
)

// @title        Social Media API
// @version      1.0
// @description  Account registration and short text messages.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New("social-media", cfg.LogLevel, cfg.LogFormat)

	accountRepo, messageRepo, closeStore := openStores(cfg, log)
	defer closeStore()

	accounts := service.NewAccountService(accountRepo, log)
	messages := service.NewMessageService(messageRepo, accounts, log)

	gin.SetMode(cfg.GinMode)
	handler := api.NewAPIHandler(accounts, messages, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(handler, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func openStores(cfg *config.Config, log zerolog.Logger) (service.AccountRepository, service.MessageRepository, func()) {
	var (
		accountRepo service.AccountRepository
		messageRepo service.MessageRepository
		closers     []func() error
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := repository.NewMemoryStore()
		accountRepo, messageRepo = store.Accounts(), store.Messages()
		log.Warn().Msg("Using in-memory store; data is lost on exit")
	default:
		db, err := repository.OpenPostgres(cfg.PostgresDSN())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		closers = append(closers, db.Close)
		accountRepo = repository.NewPostgresAccountRepo(db)
		messageRepo = repository.NewPostgresMessageRepo(db)
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Connected to PostgreSQL")
	}

	if cfg.RedisEnabled() {
		client, err := repository.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		closers = append(closers, client.Close)
		accountRepo = repository.NewCachedAccountRepo(accountRepo, client, cfg.AccountCacheTTL, log)
		log.Info().Str("addr", cfg.RedisAddr()).Msg("Connected to Redis")
	}

	return accountRepo, messageRepo, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn().Err(err).Msg("Failed to close resource")
			}
		}
	}
}
