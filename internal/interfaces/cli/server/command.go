package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"wagate/internal/application/gateway/hostservices"
	"wagate/internal/application/gateway/message"
	"wagate/internal/application/gateway/usecases"
	infraAuth "wagate/internal/infrastructure/auth"
	"wagate/internal/infrastructure/cart"
	"wagate/internal/infrastructure/config"
	"wagate/internal/infrastructure/database"
	"wagate/internal/infrastructure/email"
	"wagate/internal/infrastructure/repository"
	"wagate/internal/infrastructure/stock"
	httpRouter "wagate/internal/interfaces/http"
	"wagate/internal/interfaces/http/handlers"
	"wagate/internal/interfaces/http/middleware"
	"wagate/internal/interfaces/http/routes"
	"wagate/internal/shared/db"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the gateway HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto-migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := database.AutoMigrate(database.Get()); err != nil {
			logger.Fatal("failed to run migrations", "error", err)
		}
		logger.Info("database migrations applied")
	}

	log := logger.NewLogger()
	site := hostservices.SiteInfo{
		Name: cfg.Gateway.SiteName,
		URL:  cfg.Gateway.SiteURL,
	}

	orderRepo := repository.NewOrderRepository(database.Get())
	settingsRepo := repository.NewSettingsRepository(database.Get())
	txManager := db.NewTransactionManager(database.Get())

	formatter := message.NewFormatter(site)
	markdownSvc := markdown.NewMarkdownService()
	stockSvc := stock.NewGormStockService(database.Get(), log.Named("stock"))
	cartSvc := cart.NewRedisCartService(&cfg.Redis, log.Named("cart"))
	defer cartSvc.Close()
	emailSvc := email.NewSMTPEmailService(&cfg.Email)

	notifier := usecases.NewEmailInstructionsUseCase(emailSvc, markdownSvc, log.Named("email"))
	processPaymentUC := usecases.NewProcessPaymentUseCase(
		orderRepo, settingsRepo, formatter, stockSvc, cartSvc, txManager, notifier, site, log)
	thankYouUC := usecases.NewRenderThankYouUseCase(orderRepo, settingsRepo, markdownSvc, log)
	orderDetailsUC := usecases.NewRenderOrderDetailsUseCase(
		orderRepo, settingsRepo, formatter, cfg.Gateway.RegenerateOnView, log)

	jwtService := infraAuth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	routeCfg := &routes.GatewayRouteConfig{
		CheckoutHandler: handlers.NewCheckoutHandler(processPaymentUC, log),
		OrderHandler:    handlers.NewOrderHandler(thankYouUC, orderDetailsUC, log),
		AdminHandler:    handlers.NewAdminHandler(settingsRepo, jwtService, &cfg.Auth, log),
		AuthMiddleware:  authMiddleware,
	}

	router := httpRouter.NewRouter(routeCfg, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
