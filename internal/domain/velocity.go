package domain

import "time"

// VelocityRecord is derived per product from the sales snapshot and never
// persisted. AvgDaysToSell is nil when no sale in the group carries a selling
// date; callers must treat a missing record as "insufficient data", which is
// distinct from an average of zero.
type VelocityRecord struct {
	ProductID     string     `json:"product_id"`
	Name          string     `json:"name"`
	TotalSold     int        `json:"total_sold"`
	AvgDaysToSell *float64   `json:"avg_days_to_sell,omitempty"`
	CurrentStock  int        `json:"current_stock"`
	Price         float64    `json:"price"`
	EntryDate     *time.Time `json:"entry_date,omitempty"`
}

// Recommendation classifies a product as fast or slow moving.
// RecommendedOrder is only set for fast movers.
type Recommendation struct {
	ProductID        string  `json:"product_id"`
	Name             string  `json:"name"`
	DaysToSell       float64 `json:"days_to_sell"`
	CurrentStock     int     `json:"current_stock"`
	RecommendedOrder int     `json:"recommended_order,omitempty"`
}

// Recommendations is the classifier output, in order of production.
type Recommendations struct {
	FastMoving []Recommendation `json:"fast_moving"`
	SlowMoving []Recommendation `json:"slow_moving"`
}
