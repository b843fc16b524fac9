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

	"github.com/go-inventory-agent/internal/agent"
	"github.com/go-inventory-agent/internal/application/analytics"
	"github.com/go-inventory-agent/internal/application/monitor"
	"github.com/go-inventory-agent/internal/application/notification"
	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/infrastructure/anthropic"
	"github.com/go-inventory-agent/internal/infrastructure/dynamo"
	"github.com/go-inventory-agent/internal/infrastructure/sns"
	"github.com/go-inventory-agent/internal/pkg/clock"
	transporthttp "github.com/go-inventory-agent/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	productRepo := dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products)
	saleRepo := dynamo.NewSaleRepo(dynamoClient, cfg.DynamoTables.Sales)
	chatHistoryRepo := dynamo.NewChatHistoryRepo(dynamoClient, cfg.DynamoTables.ChatHistory)

	// SNS alert publisher (optional — graceful fallback when no topic is set).
	var publisher sns.AlertPublisher
	if cfg.SNSTopicARN != "" {
		p, err := sns.NewPublisher(cfg)
		if err != nil {
			log.Printf("WARN: SNS publisher not available: %v", err)
		} else {
			publisher = p
		}
	} else {
		log.Println("WARN: SNS_TOPIC_ARN not set, push alerts disabled")
	}

	// Anthropic completer (optional — the chat endpoint reports unavailable
	// without it).
	var completer anthropic.Completer
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		completer = anthropic.NewCompleter(cfg.AnthropicModel)
	} else {
		log.Println("WARN: ANTHROPIC_API_KEY not set, assistant disabled")
	}

	clk := clock.New()
	store := notification.NewStore(cfg.NotificationPath)
	engine := analytics.NewEngine(cfg.Thresholds)

	monitorSvc := monitor.NewService(monitor.ServiceDeps{
		ProductRepo: productRepo,
		SaleRepo:    saleRepo,
		Engine:      engine,
		Synthesizer: notification.NewSynthesizer(cfg.Thresholds),
		Store:       store,
		Publisher:   publisher,
		Clock:       clk,
	})

	monitorAgent := agent.New(monitorSvc, clk, cfg.CheckInterval)
	monitorAgent.Start(0)

	deps := &transporthttp.Deps{
		ProductRepo:   productRepo,
		SaleRepo:      saleRepo,
		Notifications: store,
		Monitor:       monitorSvc,
		Agent:         monitorAgent,
	}
	if completer != nil {
		deps.Completer = completer
		deps.ChatHistory = chatHistoryRepo
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	monitorAgent.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
