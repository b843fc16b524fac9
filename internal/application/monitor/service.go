package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-inventory-agent/internal/application/analytics"
	"github.com/go-inventory-agent/internal/domain"
	"github.com/go-inventory-agent/internal/pkg/clock"
)

// Service runs one full monitoring check: snapshot the record store, derive
// recommendations, synthesize notifications, merge them into the history, and
// push a best-effort alert when anything new appeared.
type Service interface {
	RunCheck(ctx context.Context) (int, error)
}

type productStore interface {
	Scan(ctx context.Context) ([]domain.Product, error)
}

type saleStore interface {
	Scan(ctx context.Context) ([]domain.Sale, error)
}

type synthesizer interface {
	Synthesize(products []domain.Product, recs domain.Recommendations) []domain.Notification
}

type notificationStore interface {
	Merge(now time.Time, incoming []domain.Notification) int
}

type alertPublisher interface {
	PublishAlert(ctx context.Context, title, body string, alertCount int) error
}

type recommender interface {
	Recommend(records []domain.VelocityRecord) domain.Recommendations
}

type service struct {
	products  productStore
	sales     saleStore
	engine    recommender
	synth     synthesizer
	store     notificationStore
	publisher alertPublisher // nil disables pushes
	clock     clock.Clock
}

type ServiceDeps struct {
	ProductRepo productStore
	SaleRepo    saleStore
	Engine      recommender
	Synthesizer synthesizer
	Store       notificationStore
	Publisher   alertPublisher
	Clock       clock.Clock
}

func NewService(deps ServiceDeps) Service {
	return &service{
		products:  deps.ProductRepo,
		sales:     deps.SaleRepo,
		engine:    deps.Engine,
		synth:     deps.Synthesizer,
		store:     deps.Store,
		publisher: deps.Publisher,
		clock:     deps.Clock,
	}
}

func (s *service) RunCheck(ctx context.Context) (int, error) {
	products, err := s.products.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan products: %w", err)
	}
	sales, err := s.sales.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan sales: %w", err)
	}

	records, stats := analytics.Velocity(products, sales)
	if stats.NegativeDaySamples > 0 {
		// Out-of-order timestamps are passed through unclamped; surface the
		// count so the data-quality issue stays visible.
		slog.Warn("sales dated before product entry",
			"count", stats.NegativeDaySamples)
	}

	notifications := s.synth.Synthesize(products, s.engine.Recommend(records))
	added := s.store.Merge(s.clock.Now(), notifications)
	slog.Info("inventory check completed",
		"products", len(products), "sales", len(sales),
		"notifications", len(notifications), "added", added)

	if added > 0 && s.publisher != nil {
		var lines []string
		for _, n := range notifications {
			lines = append(lines, n.Message)
		}
		if err := s.publisher.PublishAlert(ctx, "Inventory Alert", strings.Join(lines, "\n"), added); err != nil {
			slog.Error("could not publish inventory alert", "err", err)
		}
	}
	return added, nil
}
