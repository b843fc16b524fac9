package analytics

import (
	"math"

	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/domain"
)

// Engine classifies velocity records into fast and slow movers.
type Engine struct {
	thresholds config.Thresholds
}

func NewEngine(thresholds config.Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Recommend evaluates each record with a known average. Records matching
// neither bucket, and records without an average, are omitted. Output
// preserves the input order within each bucket.
func (e *Engine) Recommend(records []domain.VelocityRecord) domain.Recommendations {
	recs := domain.Recommendations{
		FastMoving: []domain.Recommendation{},
		SlowMoving: []domain.Recommendation{},
	}
	for _, r := range records {
		if r.AvgDaysToSell == nil {
			continue
		}
		avg := *r.AvgDaysToSell
		switch {
		case avg < e.thresholds.FastMovingMaxDays && r.CurrentStock < e.thresholds.FastMovingMaxStock:
			recs.FastMoving = append(recs.FastMoving, domain.Recommendation{
				ProductID:        r.ProductID,
				Name:             r.Name,
				DaysToSell:       avg,
				CurrentStock:     r.CurrentStock,
				RecommendedOrder: int(math.Floor(float64(r.TotalSold) * e.thresholds.ReorderFactor)),
			})
		case avg > e.thresholds.SlowMovingMinDays && r.CurrentStock > e.thresholds.SlowMovingMinStock:
			recs.SlowMoving = append(recs.SlowMoving, domain.Recommendation{
				ProductID:    r.ProductID,
				Name:         r.Name,
				DaysToSell:   avg,
				CurrentStock: r.CurrentStock,
			})
		}
	}
	return recs
}
