package http

import (
	"context"

	"github.com/go-inventory-agent/internal/domain"
)

// ProductRepository is the minimal interface the router requires from the
// product store.
type ProductRepository interface {
	Scan(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, barcodeID string) (*domain.Product, error)
	Put(ctx context.Context, p *domain.Product) error
	UpdateQuantity(ctx context.Context, barcodeID string, quantity int) error
}

// SaleRepository is the minimal interface the router requires from the sale
// store.
type SaleRepository interface {
	Scan(ctx context.Context) ([]domain.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Sale, error)
	Put(ctx context.Context, s *domain.Sale) error
}

// ChatHistoryRepository is the minimal interface the router requires from the
// conversation store.
type ChatHistoryRepository interface {
	Put(ctx context.Context, e *domain.ChatExchange) error
}

// NotificationHistory is the minimal interface the router requires from the
// notification store.
type NotificationHistory interface {
	Recent(limit int) []domain.Notification
}

// Completer is the minimal interface the router requires from the language
// model client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
