package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-inventory-agent/internal/domain"
	"github.com/go-inventory-agent/internal/pkg/id"
	"github.com/go-inventory-agent/internal/pkg/validate"
)

type Service interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	RegisterProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, barcodeID string) (*domain.Product, error)
	UpdateStock(ctx context.Context, barcodeID string, req domain.UpdateStockRequest) (*domain.Product, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	ListSalesByProduct(ctx context.Context, productID string) ([]domain.Sale, error)
	RecordSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error)
	Summary(ctx context.Context) (*domain.InventorySummary, error)
}

type productStore interface {
	Scan(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, barcodeID string) (*domain.Product, error)
	Put(ctx context.Context, p *domain.Product) error
	UpdateQuantity(ctx context.Context, barcodeID string, quantity int) error
}

type saleStore interface {
	Scan(ctx context.Context) ([]domain.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Sale, error)
	Put(ctx context.Context, s *domain.Sale) error
}

type service struct {
	products productStore
	sales    saleStore
}

func NewService(products productStore, sales saleStore) Service {
	return &service{products: products, sales: sales}
}

func (s *service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.Scan(ctx)
}

func (s *service) RegisterProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if _, err := s.products.Get(ctx, req.BarcodeID); err == nil {
		return nil, fmt.Errorf("barcode already registered: %w", domain.ErrConflict)
	}
	entryDate := req.EntryDate
	if entryDate == nil {
		now := time.Now().UTC()
		entryDate = &now
	}
	p := &domain.Product{
		BarcodeID: req.BarcodeID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		EntryDate: entryDate,
	}
	if err := s.products.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, barcodeID string) (*domain.Product, error) {
	return s.products.Get(ctx, barcodeID)
}

func (s *service) UpdateStock(ctx context.Context, barcodeID string, req domain.UpdateStockRequest) (*domain.Product, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if _, err := s.products.Get(ctx, barcodeID); err != nil {
		return nil, err
	}
	if err := s.products.UpdateQuantity(ctx, barcodeID, req.Quantity); err != nil {
		return nil, err
	}
	return s.products.Get(ctx, barcodeID)
}

func (s *service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.Scan(ctx)
}

// ListSalesByProduct verifies the product exists, then queries its sales.
func (s *service) ListSalesByProduct(ctx context.Context, productID string) ([]domain.Sale, error) {
	if _, err := s.products.Get(ctx, productID); err != nil {
		return nil, err
	}
	return s.sales.ListByProduct(ctx, productID)
}

// RecordSale stores the sale and decrements the product's stock, floored at
// zero. TotalPrice defaults to quantity times the current product price.
func (s *service) RecordSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	p, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown product %s: %w", req.ProductID, domain.ErrNotFound)
		}
		return nil, err
	}

	totalPrice := float64(req.QuantitySold) * p.Price
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}
	now := time.Now().UTC()
	sale := &domain.Sale{
		SaleID:       id.New(),
		ProductID:    req.ProductID,
		QuantitySold: req.QuantitySold,
		SellingDate:  &now,
		TotalPrice:   totalPrice,
	}
	if err := s.sales.Put(ctx, sale); err != nil {
		return nil, err
	}

	remaining := p.Quantity - req.QuantitySold
	if remaining < 0 {
		remaining = 0
	}
	if err := s.products.UpdateQuantity(ctx, req.ProductID, remaining); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	products, err := s.products.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.Scan(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.InventorySummary{TotalProducts: len(products)}
	var priceSum float64
	for _, p := range products {
		summary.TotalItems += p.Quantity
		priceSum += p.Price
	}
	if len(products) > 0 {
		summary.AveragePrice = priceSum / float64(len(products))
	}
	for _, s := range sales {
		summary.TotalSales += s.QuantitySold
	}
	return summary, nil
}
