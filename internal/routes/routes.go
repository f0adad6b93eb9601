package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/myhost-cloud/myhost/internal/admin"
	"github.com/myhost-cloud/myhost/internal/auth"
	"github.com/myhost-cloud/myhost/internal/config"
	"github.com/myhost-cloud/myhost/internal/contact"
	"github.com/myhost-cloud/myhost/internal/dashboard"
	"github.com/myhost-cloud/myhost/internal/domains"
	"github.com/myhost-cloud/myhost/internal/hosting"
	"github.com/myhost-cloud/myhost/internal/identity"
	"github.com/myhost-cloud/myhost/internal/middleware"
	"github.com/myhost-cloud/myhost/internal/newsletter"
	"github.com/myhost-cloud/myhost/internal/notification"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. When DB is nil in
// dev mode, every repository falls back to its in-memory implementation.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Timeout(d.Cfg.RequestTimeout))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories
	var userRepo identity.Repository
	var hostingRepo hosting.Repository
	var domainRepo domains.Repository
	var contactRepo contact.Repository
	var subscriberRepo newsletter.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		hostingRepo = hosting.NewPostgresRepository(d.DB)
		domainRepo = domains.NewPostgresRepository(d.DB)
		contactRepo = contact.NewPostgresRepository(d.DB)
		subscriberRepo = newsletter.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		hostingRepo = hosting.NewMemoryRepository()
		domainRepo = domains.NewMemoryRepository()
		contactRepo = contact.NewMemoryRepository()
		subscriberRepo = newsletter.NewMemoryRepository()
	}

	// Services
	identitySvc := identity.NewService(userRepo, d.Cfg.BcryptCost)
	tokenSvc := auth.NewTokenService(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	hostingSvc := hosting.NewService(hostingRepo)
	domainSvc := domains.NewService(domainRepo)
	newsletterSvc := newsletter.NewService(subscriberRepo)
	dashboardSvc := dashboard.NewService(identitySvc, hostingSvc, domainSvc)
	adminSvc := admin.NewService(userRepo, hostingRepo, d.Cache, d.Cfg.StatsCacheTTL, d.Logger)

	var notifier notification.Notifier = notification.NewLoggerNotifier(d.Logger)
	smtpCfg := notification.SMTPConfig{
		Host: d.Cfg.SMTPHost,
		Port: d.Cfg.SMTPPort,
		User: d.Cfg.SMTPUser,
		Pass: d.Cfg.SMTPPass,
	}
	if smtpCfg.Configured() {
		notifier = notification.NewSMTPNotifier(smtpCfg)
	}
	contactSvc := contact.NewService(contactRepo, notifier, d.Cfg.ContactRecipient, d.Logger)

	// Handlers
	authHandler := auth.NewHandler(identitySvc, tokenSvc, d.Logger)
	hostingHandler := hosting.NewHandler(hostingSvc, d.Logger)
	domainHandler := domains.NewHandler(domainSvc, d.Logger)
	contactHandler := contact.NewHandler(contactSvc, d.Logger)
	newsletterHandler := newsletter.NewHandler(newsletterSvc, d.Logger)
	dashboardHandler := dashboard.NewHandler(dashboardSvc, d.Logger)
	adminHandler := admin.NewHandler(adminSvc, d.Logger)

	api := app.Group("/api")

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit), authHandler.Login)
	api.Post("/contact", contactHandler.Submit)
	api.Post("/domain/search", domainHandler.Search)
	api.Post("/newsletter", newsletterHandler.Subscribe)

	// Protected routes
	protected := api.Group("", middleware.RequireAuth(tokenSvc))
	protected.Get("/dashboard", dashboardHandler.Load)
	protected.Post("/purchase", middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger), hostingHandler.Purchase)
	protected.Get("/admin/stats", middleware.RequireAdmin(), adminHandler.Stats)

	return nil
}
