package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/alluma/crm-backend/config"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/api/handlers"
	"github.com/alluma/crm-backend/pkg/cache"
	"github.com/alluma/crm-backend/pkg/database"
	"github.com/alluma/crm-backend/pkg/goals"
	"github.com/alluma/crm-backend/pkg/leads"
	"github.com/alluma/crm-backend/pkg/metrics"
	custommiddleware "github.com/alluma/crm-backend/pkg/middleware"
	"github.com/alluma/crm-backend/pkg/notes"
	"github.com/alluma/crm-backend/pkg/presupuestos"
	"github.com/alluma/crm-backend/pkg/push"
	"github.com/alluma/crm-backend/pkg/quotes"
	"github.com/alluma/crm-backend/pkg/reminders"
	"github.com/alluma/crm-backend/pkg/roster"
	"github.com/alluma/crm-backend/pkg/tasks"
	"github.com/alluma/crm-backend/pkg/users"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Database
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithPoolAndSSL(cfg.DatabaseURL, database.DefaultPoolConfig(), sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Services
	rosterSvc := roster.NewService(db.Ent, cfg.PoolOverrides)
	leadSvc := leads.NewService(db.Ent, rosterSvc, redisClient, cfg.DefaultPool, cfg.PhoneDefaultRegion)
	userSvc := users.NewService(db.Ent)
	taskSvc := tasks.NewService(leadSvc)
	quoteSvc := quotes.NewService(db.Ent)
	reminderSvc := reminders.NewService(db.Ent)
	noteSvc := notes.NewService(db.Ent)
	goalSvc := goals.NewService(db.Ent)
	presupuestoSvc := presupuestos.NewService(db.Ent)
	pushSvc := push.NewService(db.Ent)

	// Handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg.JWTSecret, cfg.JWTExpirationHours, prometheusMetrics)
	leadHandler := handlers.NewLeadHandler(leadSvc, prometheusMetrics)
	userHandler := handlers.NewUserHandler(userSvc)
	webhookHandler := handlers.NewWebhookHandler(leadSvc, cfg.MetaVerifyToken, prometheusMetrics)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	quoteHandler := handlers.NewQuoteHandler(quoteSvc)
	reminderHandler := handlers.NewReminderHandler(reminderSvc)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	goalHandler := handlers.NewGoalHandler(goalSvc)
	presupuestoHandler := handlers.NewPresupuestoHandler(presupuestoSvc)
	pushHandler := handlers.NewPushHandler(pushSvc)

	// Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	// Stricter budget for login (brute force), looser for the bot which
	// bursts on campaign days.
	loginRateLimiter := custommiddleware.NewRateLimiter(5, 2)
	webhookRateLimiter := custommiddleware.NewRateLimiter(120, 30)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.Middleware())

	// Public endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Alluma CRM API",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/api/auth/login", authHandler.Login, loginRateLimiter.Middleware())

	// Webhook intake (shared-key auth, no JWT)
	webhooks := e.Group("/api/webhooks", webhookRateLimiter.Middleware())
	webhooks.GET("/health", webhookHandler.Health)
	webhooks.GET("/whatsapp-lead", webhookHandler.MetaVerify)
	webhooks.POST("/whatsapp-lead", webhookHandler.WhatsAppLead, custommiddleware.WebhookKey(cfg.WebhookSecret))

	// Authenticated API
	api := e.Group("/api", custommiddleware.JWTAuth(db.Ent, cfg.JWTSecret))

	managers := custommiddleware.RequireRole(
		string(user.RoleOwner),
		string(user.RoleGerenteGeneral),
		string(user.RoleGerente),
	)
	ownerOnly := custommiddleware.RequireRole(string(user.RoleOwner))

	api.POST("/leads", leadHandler.Create)
	api.GET("/leads", leadHandler.List)
	api.GET("/leads/stats/estados", leadHandler.StatusCounts)
	api.GET("/leads/:id", leadHandler.Get)
	api.PATCH("/leads/:id", leadHandler.Update)
	api.DELETE("/leads/:id", leadHandler.Delete, ownerOnly)

	api.POST("/users", userHandler.Create, managers)
	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.PATCH("/users/:id", userHandler.Update, managers)
	api.DELETE("/users/:id", userHandler.Delete, ownerOnly)
	api.GET("/users/:id/cotizaciones/stats", quoteHandler.Stats)

	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/urgentes", taskHandler.Urgent)

	api.POST("/leads/:id/cotizaciones", quoteHandler.Create)
	api.GET("/leads/:id/cotizaciones", quoteHandler.ListByLead)
	api.DELETE("/cotizaciones/:id", quoteHandler.Delete, managers)

	api.POST("/leads/:id/recordatorios", reminderHandler.Create)
	api.GET("/leads/:id/recordatorios", reminderHandler.ListByLead)
	api.GET("/recordatorios/agenda", reminderHandler.Agenda)
	api.PATCH("/recordatorios/:id/completar", reminderHandler.Complete)
	api.DELETE("/recordatorios/:id", reminderHandler.Delete)

	api.POST("/leads/:id/notas", noteHandler.Create)
	api.GET("/leads/:id/notas", noteHandler.ListByLead)
	api.DELETE("/notas/:id", noteHandler.Delete)

	api.GET("/presupuestos", presupuestoHandler.List)
	api.GET("/presupuestos/:id", presupuestoHandler.Get)
	api.POST("/presupuestos", presupuestoHandler.Create, ownerOnly)
	api.PUT("/presupuestos/:id", presupuestoHandler.Update, ownerOnly)
	api.DELETE("/presupuestos/:id", presupuestoHandler.Delete, ownerOnly)

	api.PUT("/metas", goalHandler.Upsert, managers)
	api.GET("/metas", goalHandler.ListByMonth)

	api.POST("/push/subscribe", pushHandler.Subscribe)
	api.GET("/push/subscriptions", pushHandler.List)
	api.POST("/push/unsubscribe", pushHandler.Unsubscribe)

	// Cron jobs: periodic task and reminder sweeps
	cronManager := cron.New()
	if _, err := cronManager.AddFunc(cfg.TaskGenerationSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		taskSvc.Sweep(ctx)
		reminderSvc.Sweep(ctx)
	}); err != nil {
		log.Fatalf("❌ Failed to schedule sweep job: %v", err)
	}
	cronManager.Start()
	log.Printf("⏰ Sweep job scheduled: %s", cfg.TaskGenerationSpec)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Alluma CRM API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("👥 Default assignment pool: %s (%d overrides)", cfg.DefaultPool, len(cfg.PoolOverrides))

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
