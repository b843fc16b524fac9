package domain

import "time"

// Product is a point-in-time snapshot of a stocked item. The barcode printed
// on the physical item doubles as the document id.
type Product struct {
	BarcodeID string     `json:"barcode_id" dynamodbav:"barcode_id" validate:"required"`
	Name      string     `json:"name" dynamodbav:"name" validate:"required"`
	Price     float64    `json:"price" dynamodbav:"price" validate:"gte=0"`
	Quantity  int        `json:"quantity" dynamodbav:"quantity" validate:"gte=0"`
	EntryDate *time.Time `json:"entry_date,omitempty" dynamodbav:"entry_date,omitempty"`
}

// CreateProductRequest is the payload for registering a product.
// EntryDate defaults to the time of registration when omitted.
type CreateProductRequest struct {
	BarcodeID string     `json:"barcode_id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	Price     float64    `json:"price" validate:"gte=0"`
	Quantity  int        `json:"quantity" validate:"gte=0"`
	EntryDate *time.Time `json:"entry_date,omitempty"`
}

// UpdateStockRequest adjusts the on-hand quantity of a product.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// InventorySummary aggregates the current state of the catalog.
type InventorySummary struct {
	TotalProducts int     `json:"total_products"`
	TotalItems    int     `json:"total_items"`
	AveragePrice  float64 `json:"average_price"`
	TotalSales    int     `json:"total_sales"`
}
