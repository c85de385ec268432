package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/foodbay/internal/catalog"
	"github.com/fjod/foodbay/internal/checkout"
	"github.com/fjod/foodbay/internal/events"
	h "github.com/fjod/foodbay/internal/http"
	"github.com/fjod/foodbay/internal/receipts"
	"github.com/fjod/foodbay/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := catalog.LoadDefault()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	sessions := session.NewManager(cfg.Pricing, cfg.SessionIdleTTL)
	defer sessions.Close()

	receiptStore, closeReceipts := newReceiptStore(cfg)
	defer closeReceipts()

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("failed to close publisher: %v", err)
		}
	}()

	orders := checkout.NewService(receiptStore, publisher)

	router := h.NewRouter(
		h.NewCatalogHandler(store),
		h.NewCartHandler(sessions, store),
		h.NewCheckoutHandler(sessions, orders),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "foodbay"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("FoodBay storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func newReceiptStore(cfg *Config) (receipts.Store, func()) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, keeping receipts in memory")
		s := receipts.NewMemoryStore(cfg.ReceiptTTL)
		return s, func() { s.Close() }
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
	}
	log.Printf("receipts cached in redis at %s", cfg.RedisAddr)
	return receipts.NewRedisStore(client, cfg.ReceiptTTL), func() { client.Close() }
}

func newPublisher(cfg *Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("KAFKA_BROKERS not set, order events are only logged")
		return events.LogPublisher{}
	}
	log.Printf("publishing order events to kafka topic %s", cfg.KafkaTopic)
	return events.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
}
