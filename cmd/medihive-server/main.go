package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medihive/medihive/internal/config"
	"github.com/medihive/medihive/internal/domain/admin"
	"github.com/medihive/medihive/internal/domain/appointment"
	"github.com/medihive/medihive/internal/domain/doctor"
	"github.com/medihive/medihive/internal/domain/identity"
	"github.com/medihive/medihive/internal/domain/rating"
	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/internal/platform/db"
	"github.com/medihive/medihive/internal/platform/mail"
	"github.com/medihive/medihive/internal/platform/middleware"
	"github.com/medihive/medihive/internal/platform/token"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "medihive-server",
		Short: "MediHive appointment booking API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MediHive API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				applied := "-"
				if s.AppliedAt != nil {
					applied = s.AppliedAt.Format(time.RFC3339)
				}
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, state, applied)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	codec, err := token.NewCodec(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build token codec")
	}

	var mailer mail.Sender = mail.Noop{}
	if cfg.MailEnabled() {
		mailer = mail.NewSMTPSender(mail.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	} else {
		logger.Warn().Msg("SMTP not configured, confirmation emails disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	protected := api.Group("", auth.Authenticate(codec))

	// Repositories, services, handlers
	identityRepo := identity.NewRepoPG(pool)
	identitySvc := identity.NewService(identityRepo, codec)
	identity.NewHandler(identitySvc).RegisterRoutes(api, protected)

	doctorRepo := doctor.NewRepoPG(pool)
	doctorSvc := doctor.NewService(doctorRepo)
	doctor.NewHandler(doctorSvc).RegisterRoutes(api, protected)

	apptRepo := appointment.NewRepoPG(pool)
	apptSvc := appointment.NewService(apptRepo, mailer, logger)
	appointment.NewHandler(apptSvc).RegisterRoutes(protected)

	ratingRepo := rating.NewRepoPG(pool)
	ratingSvc := rating.NewService(ratingRepo)
	rating.NewHandler(ratingSvc).RegisterRoutes(api, protected)

	adminRepo := admin.NewRepoPG(pool)
	adminSvc := admin.NewService(adminRepo)
	admin.NewHandler(adminSvc).RegisterRoutes(protected)

	e.GET("/health", db.HealthHandler(pool, version))

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
