package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/abhayrai8299/creator-assignment-backend/internal/facades"
	"github.com/abhayrai8299/creator-assignment-backend/internal/handlers"
	appjwt "github.com/abhayrai8299/creator-assignment-backend/internal/jwt"
	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/middlewares"
	"github.com/abhayrai8299/creator-assignment-backend/internal/migrations"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/repositories"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title creator-assignment-backend API
// @version 1.0.0
// @description Backend for user registration, a credits reward system, a content feed, and an admin panel
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		feedCacheSecond,
		kafkaAddr, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminEmail, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		feedCacheSecond,
		kafkaAddr, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminEmail, adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, and admin-seed configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	feedCacheSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminEmail, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if feedCacheSecond, err = strconv.Atoi(getEnv("FEED_CACHE_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; reward events are disabled when no broker is set
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "reward-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "14400")); err != nil {
		return
	}

	// Seeded administrator account
	adminUsername = getEnv("ADMIN_USERNAME", "admin")
	adminEmail = getEnv("ADMIN_EMAIL", "admin@gmail.com")
	adminPassword = getEnv("ADMIN_PASSWORD", "test@12345")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It runs migrations, seeds the admin account, sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	feedCacheSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminEmail, adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Run migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka reward event publishing is optional
	var events services.RewardEventWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = writer
		logger.Log.Infof("Publishing reward events to %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	tokener := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	feedCache := repositories.NewFeedCacheRepository(rdb, time.Duration(feedCacheSecond)*time.Second)

	// External feed providers
	sources := []services.FeedSource{
		facades.NewRedditFacade(nil, ""),
		facades.NewTwitterFacade(nil, ""),
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, events)
	feedService := services.NewFeedService(sources, feedCache, userReadRepo, userWriteRepo, events)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, events)
	dashboardService := services.NewDashboardService(userReadRepo)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo)

	// Seed the admin account before accepting traffic
	if err := authService.SeedAdmin(ctx, adminUsername, adminEmail, adminPassword); err != nil {
		logger.Log.Errorw("admin seeding failed", "error", err)
		return err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	tx := middlewares.TxMiddleware(db)
	auth := middlewares.AuthMiddleware(tokener)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.With(tx).Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/admin/login", handlers.NewAdminLoginHandler(authService))
	r.With(tx).Post("/complete-profile", handlers.NewCompleteProfileHandler(profileService))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/feed", handlers.NewFeedHandler(feedService))
		r.Get("/dashboard", handlers.NewDashboardHandler(dashboardService))
		r.With(tx).Post("/feed/save", handlers.NewFeedSaveHandler(feedService))
		r.With(tx).Post("/feed/share", handlers.NewFeedShareHandler(feedService))
		r.With(tx).Post("/feed/report", handlers.NewFeedReportHandler(feedService))
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middlewares.RequireRole(models.RoleAdmin))
		r.Get("/admin/users", handlers.NewAdminUsersHandler(adminService))
		r.With(tx).Put("/admin/credits/{id}", handlers.NewAdminCreditsHandler(adminService))
		r.Get("/admin/feed/activity", handlers.NewAdminActivityHandler(adminService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
