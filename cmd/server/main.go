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

	"emily-backend/internal/backend"
	"emily-backend/internal/chat"
	"emily-backend/internal/config"
	"emily-backend/internal/database"
	"emily-backend/internal/emotion"
	"emily-backend/internal/handlers"
	"emily-backend/internal/middleware"
	"emily-backend/internal/repository"
	"emily-backend/internal/router"
	"emily-backend/internal/websocket"
	"emily-backend/internal/worker"
)

func main() {
	log.Println("🚀 Starting Emily Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 3: Optional Transcript Archive ────
	var archiveHandler *handlers.ArchiveHandler
	var jwtAuth *middleware.JWTAuth
	var archiver *worker.Archiver

	if cfg.ArchiveEnabled() {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()

		transcripts := repository.NewTranscriptRepo(pool)
		if err := transcripts.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("✗ Transcript schema setup failed: %v", err)
		}

		archiver = worker.NewArchiver(redisClients.Publish, transcripts, 2)
		archiver.Start()

		jwtAuth = middleware.NewJWTAuth(cfg.JWTSecret)
		archiveHandler = handlers.NewArchiveHandler(transcripts)
		log.Println("✓ Transcript archive enabled")
	}

	// ──── Step 4: Initialize Backend Strategy ────
	generator, err := buildGenerator(cfg)
	if err != nil {
		log.Fatalf("✗ Backend initialization failed: %v", err)
	}
	log.Printf("✓ Response backend ready (strategy: %s)", cfg.BackendStrategy)

	// ──── Step 5: Turn Pipeline ────
	emotionClient := emotion.NewClient(cfg.EmotionAPIURL)
	publisher := websocket.NewPublisher(redisClients.Publish, archiver)

	sessions := chat.NewManager(emotionClient, generator, chat.Options{
		Cooldown:      cfg.Cooldown,
		TemplateDelay: cfg.TemplateDelay,
		Sink:          publisher,
	})
	log.Println("✓ Turn pipeline ready")

	// ──── Step 6: WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: HTTP Server ────
	chatHandler := handlers.NewChatHandler(sessions)
	r := router.New(chatHandler, archiveHandler, jwtAuth, wsHub, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		if archiver != nil {
			archiver.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Emily Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// buildGenerator selects the response backend strategy from configuration and
// wraps it with retries when requested.
func buildGenerator(cfg *config.Config) (backend.Generator, error) {
	var generator backend.Generator

	switch cfg.BackendStrategy {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini strategy")
		}
		generator = backend.NewGemini(cfg.GeminiAPIKey, cfg.GeminiURLs)
	case "geminisdk":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the geminisdk strategy")
		}
		sdk, err := backend.NewGeminiSDK(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		generator = sdk
	case "relay":
		if cfg.RelayURL == "" {
			return nil, fmt.Errorf("RELAY_URL is required for the relay strategy")
		}
		generator = backend.NewRelay(cfg.RelayURL, cfg.RelayToken)
	case "chatflow":
		if cfg.ChatflowURL == "" {
			return nil, fmt.Errorf("CHATFLOW_URL is required for the chatflow strategy")
		}
		generator = backend.NewChatflow(cfg.ChatflowURL)
	default:
		return nil, fmt.Errorf("unknown backend strategy %q", cfg.BackendStrategy)
	}

	if cfg.BackendRetries > 1 {
		generator = backend.WithRetry(generator, cfg.BackendRetries, time.Second)
	}
	return generator, nil
}
