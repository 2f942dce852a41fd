package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"docyo/database"
	"docyo/docs"
	"docyo/internal/cache"
	"docyo/internal/config"
	"docyo/internal/controllers"
	"docyo/internal/logger"
	"docyo/internal/middleware"
	"docyo/internal/repository"
	"docyo/internal/services"
	"docyo/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// running from cmd/
		_ = godotenv.Load("../.env")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Docyo API"
	docs.SwaggerInfo.Description = "Patient onboarding, health dashboard and doctor search."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDatabase(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		logger.Fatal("Failed to run database migrations", "error", err)
	}
	database.MonitorDBConnections(ctx, db, 10*time.Second)

	gateway := repository.NewGateway(db)

	// The catalog cache is optional; without redis every start reads the database.
	var (
		redisClient  *cache.RedisClient
		catalogCache services.CatalogCache
	)
	if cfg.Redis.URL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("Redis unavailable, doctor catalog cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			catalogCache = redisClient
		}
	}

	catalog := services.NewDoctorCatalog(gateway.Doctors, catalogCache, cfg.Redis.CatalogTTL)
	if err := catalog.Load(ctx); err != nil {
		logger.Fatal("Failed to load doctor catalog", "error", err)
	}
	if cfg.Catalog.RefreshInterval > 0 {
		scheduler, err := services.StartCatalogRefresh(ctx, catalog, cfg.Catalog.RefreshInterval)
		if err != nil {
			logger.Fatal("Failed to start catalog refresh", "error", err)
		}
		defer scheduler.Stop()
	}

	// Initialize controllers
	sessionController := controllers.NewSessionController()
	profileController := controllers.NewProfileController(gateway.Profiles)
	onboardingController := controllers.NewOnboardingController(services.NewOnboardingService(gateway))
	dashboardController := controllers.NewDashboardController(services.NewDashboardService(gateway))
	doctorController := controllers.NewDoctorController(catalog)
	vitalsController := controllers.NewVitalsController(gateway.Vitals)

	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.BestSpeed, gzip.WithExcludedPaths([]string{"/swagger"})))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":        "Docyo API is running",
			"version":        "1.0.0",
			"status":         "healthy",
			"database":       "PostgreSQL",
			"catalog_cache":  catalogCache != nil,
			"catalog_loaded": catalog.LoadedAt(),
		})
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	routes.RegisterSwaggerRoutes(router)
	routes.RegisterSessionRoutes(router, auth, sessionController)
	routes.RegisterProfileRoutes(router, auth, profileController)
	routes.RegisterOnboardingRoutes(router, auth, onboardingController)
	routes.RegisterDashboardRoutes(router, auth, dashboardController)
	routes.RegisterDoctorRoutes(router, auth, doctorController)
	routes.RegisterVitalsRoutes(router, auth, vitalsController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"doctors":    len(catalog.Doctors()),
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"database_health": true})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(http.StatusOK, gin.H{"connected": false})
			return
		}
		status, err := redisClient.GetStatus(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"connected": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, status)
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("Server starting",
			"port", cfg.Port,
			"docs", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server exited")
}
