package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-inventory-agent/internal/agent"
	"github.com/go-inventory-agent/internal/application/analytics"
	"github.com/go-inventory-agent/internal/application/chat"
	"github.com/go-inventory-agent/internal/application/inventory"
	"github.com/go-inventory-agent/internal/application/monitor"
	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/transport/http/handler"
	appmiddleware "github.com/go-inventory-agent/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProductRepo   ProductRepository
	SaleRepo      SaleRepository
	ChatHistory   ChatHistoryRepository // nil disables conversation persistence
	Notifications NotificationHistory
	Monitor       monitor.Service
	Agent         *agent.Agent
	Completer     Completer // nil disables the assistant endpoint
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 1 request/second, burst of 3. Each chat request fans out into a model
	// call, so the limit is tighter than for plain reads.
	chatRL := appmiddleware.NewRateLimiter(rate.Limit(1), 3)

	inventorySvc := inventory.NewService(deps.ProductRepo, deps.SaleRepo)
	var chatSvc chat.Service
	if deps.Completer != nil {
		chatSvc = chat.NewService(chat.ServiceDeps{
			ProductRepo: deps.ProductRepo,
			SaleRepo:    deps.SaleRepo,
			Engine:      analytics.NewEngine(cfg.Thresholds),
			Completer:   deps.Completer,
			History:     deps.ChatHistory,
		})
	}

	healthH := handler.NewHealthHandler()
	productH := handler.NewProductHandler(inventorySvc)
	saleH := handler.NewSaleHandler(inventorySvc)
	notifH := handler.NewNotificationHandler(deps.Notifications)
	monitorH := handler.NewMonitorHandler(deps.Agent, deps.Monitor)
	chatH := handler.NewChatHandler(chatSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.Get("/products", productH.List)
		r.Post("/products", productH.Create)
		r.Get("/products/{id}", productH.Get)
		r.Put("/products/{id}/stock", productH.UpdateStock)
		r.Get("/products/{id}/sales", saleH.ListByProduct)

		r.Get("/sales", saleH.List)
		r.Post("/sales", saleH.Create)

		r.Get("/inventory/summary", productH.Summary)
		r.Get("/notifications", notifH.List)

		r.Post("/monitor/start", monitorH.Start)
		r.Post("/monitor/stop", monitorH.Stop)
		r.Get("/monitor/status", monitorH.Status)
		r.Post("/monitor/check", monitorH.Check)

		r.With(chatRL.Limit).Post("/chat", chatH.Ask)
	})

	return r
}
