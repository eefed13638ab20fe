package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"sosadmin-backend/internal/config"
	"sosadmin-backend/internal/database"
	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/handlers"
	"sosadmin-backend/internal/middleware"
	"sosadmin-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (must be done before checking GIN_MODE)
	if err := godotenv.Load(); err != nil {
		// .env file is optional, so just log if not found
		log.Printf("No .env file found or error loading: %v", err)
	} else {
		log.Println("Loaded .env file")
	}

	// Set Gin mode based on environment (after loading .env)
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load configuration
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if !cfg.ArchiveExists() {
		log.Println("New archive detected")
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal("Failed to initialize archive:", err)
	}
	defer db.Close()

	client := firebase.NewClient(cfg.FirebaseURL)

	purgeService := services.NewPurgeService(client, db)
	exportService := services.NewExportService(client, db, cfg.MessagesPath, cfg.ExportPath)
	statusService := services.NewStatusService(client, db, cfg.MessagesPath)
	snapshotService := services.NewSnapshotService(db)

	handler := handlers.NewHandler(purgeService, exportService, statusService, snapshotService)

	r := gin.Default()

	// Apply global panic recovery and request ID middleware
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// Apply rate limiting globally (except for OPTIONS requests)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, time.Minute)
	r.Use(func(c *gin.Context) {
		if c.Request.Method != "OPTIONS" {
			middleware.RateLimitMiddleware(rateLimiter)(c)
		} else {
			c.Next()
		}
	})

	// Strict CORS policy with explicit origin checking
	allowedOrigins := []string{cfg.FrontendURL}
	if customOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); customOrigins != "" {
		for _, origin := range strings.Split(customOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	log.Printf("CORS: Allowing explicit origins: %v", allowedOrigins)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"message": "SOS Admin API is running",
			})
		})

		api.GET("/status", handler.GetStatus)
		api.GET("/snapshots", handler.GetSnapshots)
		api.POST("/purge", handler.PurgeDatabase)
		api.POST("/export", handler.ExportMessages)
	}

	log.Printf("Server starting on %s:%s", cfg.ServerHost, cfg.ServerPort)
	log.Printf("Firebase URL: %s", cfg.FirebaseURL)
	log.Printf("Archive path: %s", cfg.ArchivePath)
	log.Printf("Export path: %s", cfg.ExportPath)
	log.Printf("Frontend URL: %s", cfg.FrontendURL)

	if err := r.Run(cfg.ServerHost + ":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
