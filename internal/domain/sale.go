package domain

import "time"

// Sale is a point-in-time snapshot of one sales record. ProductID references
// a Product barcode but is not enforced referentially; the analytics layer
// tolerates dangling references.
type Sale struct {
	SaleID       string     `json:"id" dynamodbav:"sale_id"`
	ProductID    string     `json:"product_id" dynamodbav:"product_id"`
	QuantitySold int        `json:"quantity_sold" dynamodbav:"quantity_sold"`
	SellingDate  *time.Time `json:"selling_date,omitempty" dynamodbav:"selling_date,omitempty"`
	TotalPrice   float64    `json:"total_price" dynamodbav:"total_price"`
}

// CreateSaleRequest records a sale. TotalPrice is computed from the product
// price when omitted.
type CreateSaleRequest struct {
	ProductID    string   `json:"product_id" validate:"required"`
	QuantitySold int      `json:"quantity_sold" validate:"gt=0"`
	TotalPrice   *float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
}
