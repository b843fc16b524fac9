package analytics

import (
	"github.com/go-inventory-agent/internal/domain"
)

const hoursPerDay = 24

// Stats carries data-quality counters observed during a velocity pass.
type Stats struct {
	// NegativeDaySamples counts sale records dated before the matching
	// product's entry date. Such samples are included in the averages
	// unmodified; the counter exists so the monitor can surface them.
	NegativeDaySamples int
	// SkippedSales counts sale records without a product_id.
	SkippedSales int
}

// Velocity joins the sales snapshot to the product snapshot and computes one
// VelocityRecord per product with at least one qualifying sale. Records are
// ordered by first appearance of the product in the sales snapshot, so output
// order is deterministic for a given input.
//
// Sales without a product_id and products without an entry date are excluded
// silently: they are malformed external data, not errors. Products with zero
// sales produce no record at all — "no record" means insufficient data, not
// a zero average.
func Velocity(products []domain.Product, sales []domain.Sale) ([]domain.VelocityRecord, Stats) {
	var stats Stats

	// Index products by barcode; last write wins on duplicate ids.
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.BarcodeID] = p
	}

	// Group sales by product, keeping first-appearance order.
	groups := make(map[string][]domain.Sale)
	var order []string
	for _, s := range sales {
		if s.ProductID == "" {
			stats.SkippedSales++
			continue
		}
		if _, seen := groups[s.ProductID]; !seen {
			order = append(order, s.ProductID)
		}
		groups[s.ProductID] = append(groups[s.ProductID], s)
	}

	var records []domain.VelocityRecord
	for _, productID := range order {
		product, ok := byID[productID]
		if !ok || product.EntryDate == nil {
			continue
		}

		totalSold := 0
		var daysToSell []float64
		for _, s := range groups[productID] {
			totalSold += s.QuantitySold
			if s.SellingDate == nil {
				continue
			}
			days := s.SellingDate.Sub(*product.EntryDate).Hours() / hoursPerDay
			if days < 0 {
				stats.NegativeDaySamples++
			}
			daysToSell = append(daysToSell, days)
		}

		var avg *float64
		if len(daysToSell) > 0 {
			sum := 0.0
			for _, d := range daysToSell {
				sum += d
			}
			mean := sum / float64(len(daysToSell))
			avg = &mean
		}

		records = append(records, domain.VelocityRecord{
			ProductID:     productID,
			Name:          product.Name,
			TotalSold:     totalSold,
			AvgDaysToSell: avg,
			CurrentStock:  product.Quantity,
			Price:         product.Price,
			EntryDate:     product.EntryDate,
		})
	}
	return records, stats
}
