package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/database"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/fare"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/handlers"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/router"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/service"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/websocket"
)

const (
	DefaultPort = "8080"
)

func main() {
	// .env is optional; real deployments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = DefaultPort
	}

	// Pick the flight catalog: Postgres when configured, the in-memory
	// sample catalog otherwise.
	var provider catalog.Provider
	var store catalog.OccupancyStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("Failed to create database pool: %v", err)
		}
		defer pool.Close()

		repo := database.NewRepository(pool)
		provider = repo
		store = repo
		log.Println("Flight catalog: Postgres")
	} else {
		mem := catalog.NewSampleProvider()
		provider = mem
		store = mem
		log.Println("Flight catalog: in-memory samples")
	}

	// Start the occupancy hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	quoteService := service.NewQuoteService(provider, store, hub, fare.DefaultPricingConfig())

	// Initialize handlers
	h := handlers.NewHandler(quoteService, hub)

	// Create router
	r := router.SetupRouter(h)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Fare engine starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
