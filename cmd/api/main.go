package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iamasit07/save-point/internal/config"
	"github.com/iamasit07/save-point/internal/lib/logger/sl"
	"github.com/iamasit07/save-point/internal/repository/memory"
	"github.com/iamasit07/save-point/internal/service/game"
	transportHttp "github.com/iamasit07/save-point/internal/transport/http"
	"github.com/iamasit07/save-point/internal/transport/http/middleware"
	"github.com/iamasit07/save-point/internal/transport/websocket"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)

	if envErr != nil {
		log.Debug("no .env file found, using environment variables")
	}
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Store and change feed
	gameRepo := memory.NewGameRepo()
	connManager := websocket.NewConnectionManager(log, cfg.WSWriteTimeout)

	// 2. Service
	gameService := game.NewService(gameRepo, connManager, log)
	if cfg.SeedGames {
		if err := gameService.Seed(game.DefaultSeed()); err != nil {
			log.Error("failed to seed games", sl.Err(err))
			os.Exit(1)
		}
	}

	// 3. HTTP
	wsHandler := websocket.NewHandler(connManager, func(r *http.Request) bool {
		return middleware.OriginAllowed(cfg.AllowedOrigins, r.Header.Get("Origin"))
	})
	router := transportHttp.NewRouter(gameService, wsHandler, cfg.AllowedOrigins, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	srv.RegisterOnShutdown(connManager.CloseAll)

	go func() {
		log.Info("save point api listening",
			slog.String("address", srv.Addr),
			slog.String("env", cfg.Env),
			slog.Int("games", gameService.Count()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", sl.Err(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", sl.Err(err))
		return
	}

	log.Info("server exited gracefully")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(log)
	return log
}
