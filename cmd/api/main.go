package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/showai/connect4-engine/internal/config"
	"github.com/showai/connect4-engine/internal/event"
	"github.com/showai/connect4-engine/internal/repository/postgres"
	"github.com/showai/connect4-engine/internal/repository/redis"
	"github.com/showai/connect4-engine/internal/service/bot"
	"github.com/showai/connect4-engine/internal/service/cleanup"
	"github.com/showai/connect4-engine/internal/service/move"
	"github.com/showai/connect4-engine/internal/service/worker"
	transportHttp "github.com/showai/connect4-engine/internal/transport/http"
	"github.com/showai/connect4-engine/internal/transport/http/middleware"
	"github.com/showai/connect4-engine/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Engine worker pool
	engine := bot.Engine{Depth: cfg.SearchDepth}
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, engine.BestMove)
	pool.Start()

	moveService := move.NewService(pool, cfg.SearchDepth, cfg.MoveTimeout)

	// 2. Redis move cache (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		moveService.Cache = redis.NewMoveCache(redis.RedisClient)
		moveService.CacheTTL = cfg.MoveCacheTTL
	}

	// 3. Postgres move log (optional)
	var cleanupWorker *cleanup.Worker
	if cfg.DatabaseURL != "" {
		db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer postgres.CloseDB()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		moveLog := postgres.NewMoveLogRepo(db)
		moveService.Recorder = moveLog

		cleanupWorker = cleanup.NewWorker(moveLog, cfg.MoveLogRetentionDays)
		cleanupWorker.Start()
	} else {
		log.Println("[DB] DATABASE_URL not set, move log disabled")
	}

	// 4. Kafka analytics (optional)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := event.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Printf("[KAFKA] Warning: Could not connect producer: %v", err)
		} else {
			defer producer.Close()
			moveService.Publisher = producer
		}
	}

	// 5. Transport
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, moveService, cfg.JWTSecret, cfg.AllowedOrigins)
	moveHandler := transportHttp.NewMoveHandler(moveService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", transportHttp.Health)
	transportHttp.RegisterRoutes(router, moveHandler, middleware.AuthMiddleware(cfg.JWTSecret))

	// WebSocket Route (auth handled inside the WS handler itself)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connManager.CloseAll("server shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if cleanupWorker != nil {
		cleanupWorker.Stop()
	}
	pool.Stop()
	moveService.Wait()

	log.Println("Server exited gracefully")
}
