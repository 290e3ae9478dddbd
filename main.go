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

	"JournalGo/config"
	"JournalGo/middleware"
	"JournalGo/routes"
	"JournalGo/services"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
		return
	}

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
		return
	}

	// Redis is optional; without it one-time codes live in process memory
	// and are lost on restart.
	var otpStore services.OTPStore
	if err := config.InitRedis(conf); err != nil {
		config.Logger.Warnw("redis unavailable, using in-memory OTP store", "error", err)
		otpStore = services.NewMemoryOTPStore()
	} else {
		otpStore = services.NewRedisOTPStore(config.RedisClient)
	}

	geminiClient, err := services.NewGeminiClient(conf.GeminiAPIKey, conf.GeminiAPIEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize Gemini client: %v", err)
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, geminiClient, otpStore)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("starting server on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
