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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"family-bank/internal/database"
	"family-bank/internal/handlers"
	"family-bank/internal/jwt"
	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/repositories"
	"family-bank/internal/services"

	_ "family-bank/docs"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title family-bank API
// @version 1.0.0
// @description Service for shared household finances: transactions, savings goals, member profiles, and invites
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
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
		cacheTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
		cacheTTL,
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
// application, database, Redis, Kafka, JWT, and cache configuration.
// KAFKA_ADDR may be empty; transaction events are then not published.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	cacheTTLSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "familybank")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "family-bank-transactions")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Membership role cache config
	if cacheTTLSecond, err = strconv.Atoi(getEnv("MEMBERSHIP_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	cacheTTLSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL and run migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := database.Open(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka writer initialized for topic %s at %s", kafkaTopic, kafkaAddr)
	} else {
		log.Info("KAFKA_ADDR not set, transaction events disabled")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	houseReadRepo := repositories.NewHouseholdReadRepository(db)
	houseWriteRepo := repositories.NewHouseholdWriteRepository(db, middlewares.GetTxFromContext)
	memberReadRepo := repositories.NewMembershipReadRepository(db)
	memberWriteRepo := repositories.NewMembershipWriteRepository(db, middlewares.GetTxFromContext)
	inviteReadRepo := repositories.NewInviteReadRepository(db)
	inviteWriteRepo := repositories.NewInviteWriteRepository(db, middlewares.GetTxFromContext)
	txReadRepo := repositories.NewTransactionReadRepository(db)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	goalReadRepo := repositories.NewGoalReadRepository(db)
	goalWriteRepo := repositories.NewGoalWriteRepository(db, middlewares.GetTxFromContext)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	cacheRepo := repositories.NewMembershipCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	householdService := services.NewHouseholdService(houseWriteRepo, houseReadRepo, memberWriteRepo, memberReadRepo, cacheRepo)
	inviteService := services.NewInviteService(inviteWriteRepo, inviteReadRepo, houseReadRepo, memberWriteRepo, memberReadRepo, cacheRepo)
	transactionService := services.NewTransactionService(txWriteRepo, txReadRepo, profileReadRepo, memberReadRepo, cacheRepo, kafkaWriter)
	goalService := services.NewGoalService(goalWriteRepo, goalReadRepo, memberReadRepo, cacheRepo)
	profileService := services.NewProfileService(profileWriteRepo, profileReadRepo, memberReadRepo, cacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createHouseholdHandler := handlers.NewCreateHouseholdHandler(householdService)
	listHouseholdsHandler := handlers.NewListHouseholdsHandler(householdService)
	createInviteHandler := handlers.NewCreateInviteHandler(inviteService)
	acceptInviteHandler := handlers.NewAcceptInviteHandler(inviteService)
	createTransactionHandler := handlers.NewCreateTransactionHandler(transactionService)
	listTransactionsHandler := handlers.NewListTransactionsHandler(transactionService)
	updateTransactionHandler := handlers.NewUpdateTransactionHandler(transactionService)
	deleteTransactionHandler := handlers.NewDeleteTransactionHandler(transactionService)
	getGoalHandler := handlers.NewGetGoalHandler(goalService)
	putGoalHandler := handlers.NewPutGoalHandler(goalService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService)
	putProfileHandler := handlers.NewPutProfileHandler(profileService)
	listProfilesHandler := handlers.NewListProfilesHandler(profileService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/households", listHouseholdsHandler)
		r.Get("/transactions", listTransactionsHandler)
		r.Get("/goals", getGoalHandler)
		r.Get("/profile", getProfileHandler)
		r.Get("/profiles", listProfilesHandler)

		// Mutations run inside a per-request transaction that rolls back
		// when the handler responds with an error status.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/households", createHouseholdHandler)
			r.Post("/invites", createInviteHandler)
			r.Post("/invites/accept", acceptInviteHandler)
			r.Post("/transactions", createTransactionHandler)
			r.Patch("/transactions", updateTransactionHandler)
			r.Delete("/transactions", deleteTransactionHandler)
			r.Put("/goals", putGoalHandler)
			r.Put("/profile", putProfileHandler)
		})
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
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
