package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"ashara.health/site/common/id"
	"ashara.health/site/common/logger"
	"ashara.health/site/common/otel"
	"ashara.health/site/core/config"
	"ashara.health/site/internal/availability"
	"ashara.health/site/internal/chat"
	"ashara.health/site/internal/contact"
	"ashara.health/site/internal/http/middleware"
	httprouter "ashara.health/site/internal/http/router"
	"ashara.health/site/internal/llm"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "site server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	if !cfg.OpenAI.Enabled() {
		// Deliberate: the chat endpoint will answer 500 until a key is set
		slog.WarnContext(ctx, "OPENAI_API_KEY not set; chat requests will fail upstream auth")
	}

	chatService := chat.NewService(llm.New(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
	}), cfg.Practice)

	deps := httprouter.Dependencies{
		Chat:         chatService,
		Contact:      contact.NewService(contact.LogDeliverer{}),
		Availability: availability.NewMockProvider(0),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, deps)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Must outlive the chat stream deadline or streams get cut short
		WriteTimeout: cfg.Chat.RequestTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, deps httprouter.Dependencies) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, deps, httprouter.RouterConfig{
		IsProduction: cfg.IsProduction(),
		ChatTimeout:  cfg.Chat.RequestTimeout,
	})

	return router
}

const banner = `
 █████╗ ███████╗██╗  ██╗ █████╗ ██████╗  █████╗     ███████╗██╗████████╗███████╗
██╔══██╗██╔════╝██║  ██║██╔══██╗██╔══██╗██╔══██╗    ██╔════╝██║╚══██╔══╝██╔════╝
███████║███████╗███████║███████║██████╔╝███████║    ███████╗██║   ██║   █████╗
██╔══██║╚════██║██╔══██║██╔══██║██╔══██╗██╔══██║    ╚════██║██║   ██║   ██╔══╝
██║  ██║███████║██║  ██║██║  ██║██║  ██║██║  ██║    ███████║██║   ██║   ███████╗
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝    ╚══════╝╚═╝   ╚═╝   ╚══════╝
`
