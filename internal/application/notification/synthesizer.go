package notification

import (
	"fmt"
	"sort"

	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/domain"
)

// Synthesizer turns inventory signals into prioritized notification records.
// Output carries no id or timestamp; the store assigns both at merge time.
type Synthesizer struct {
	lowStock int
}

func NewSynthesizer(thresholds config.Thresholds) *Synthesizer {
	return &Synthesizer{lowStock: thresholds.LowStock}
}

// Synthesize applies each rule in a fixed sequence, then stable-sorts by
// priority so warnings surface before alerts and alerts before infos while
// production order is preserved within a type.
func (s *Synthesizer) Synthesize(products []domain.Product, recs domain.Recommendations) []domain.Notification {
	var out []domain.Notification

	for _, p := range products {
		if p.Quantity < s.lowStock {
			out = append(out, domain.Notification{
				Type:      domain.NotificationWarning,
				Message:   fmt.Sprintf("Low stock alert: %s has only %d units left", p.Name, p.Quantity),
				ProductID: p.BarcodeID,
			})
		}
	}

	for _, r := range recs.FastMoving {
		out = append(out, domain.Notification{
			Type: domain.NotificationInfo,
			Message: fmt.Sprintf("%s is selling well (avg %.1f days to sell). Consider ordering %d more units.",
				r.Name, r.DaysToSell, r.RecommendedOrder),
			ProductID: r.ProductID,
		})
	}

	for _, r := range recs.SlowMoving {
		out = append(out, domain.Notification{
			Type: domain.NotificationAlert,
			Message: fmt.Sprintf("%s is moving slowly (avg %.1f days to sell). Consider reducing stock.",
				r.Name, r.DaysToSell),
			ProductID: r.ProductID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}
