package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shashank-tomar0/RankSense-AI/internal/config"
	"github.com/shashank-tomar0/RankSense-AI/internal/handlers"
	"github.com/shashank-tomar0/RankSense-AI/internal/models"
	"github.com/shashank-tomar0/RankSense-AI/internal/repositories"
	"github.com/shashank-tomar0/RankSense-AI/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	phraseExtractor, err := services.NewProseExtractor()
	if err != nil {
		// Health check exposes this; JD analysis degrades to empty sets
		log.Printf("⚠️  Phrase extraction model unavailable: %v\n", err)
	} else {
		log.Println("✅ Phrase extraction model loaded")
	}

	extractorRegistry := services.NewExtractorRegistry()
	scorer := services.NewScorer(phraseExtractor)
	hub := services.NewHub()
	log.Println("✅ Services initialized successfully")

	// Initialize pipeline
	pipeline := services.NewPipelineService(
		candidateRepo,
		extractorRegistry,
		scorer,
		hub,
		cfg.Pipeline.ProcessingDelay,
		cfg.Pipeline.MinTextLength,
	)
	log.Println("✅ Pipeline service initialized")

	// Initialize worker
	worker := services.NewWorker(pipeline, cfg.Pipeline.Concurrency)

	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		worker,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo)
	wsHandler := handlers.NewWSHandler(hub)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "RankSense AI API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:      "active",
			ModelLoaded: phraseExtractor.Ready(),
		})
	})

	// API endpoints
	app.Post("/upload", uploadHandler.HandleUpload)
	app.Get("/candidates", candidateHandler.HandleList)
	app.Delete("/candidates", candidateHandler.HandleClear)

	// Notification channel
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/logs", websocket.New(wsHandler.HandleLogs))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
