package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-inventory-agent/internal/application/analytics"
	"github.com/go-inventory-agent/internal/domain"
	"github.com/go-inventory-agent/internal/pkg/id"
)

// trendPhrases trigger the richer prompt that attaches the restocking
// analysis. This is a plain keyword heuristic; the analytics core only ever
// sees the boolean outcome.
var trendPhrases = []string{
	"trend", "recommend", "restock", "restocking",
	"best sell", "fast sell", "slow sell", "popular",
	"sales velocity", "turnover rate", "moving products",
	"should i order", "how many to order", "projected inventory",
}

const basePrompt = `You are an AI assistant for a small grocery store inventory management system. You have access to the following collections:

- products: product information (barcode_id, name, price, quantity, entry_date)
- sales: sales information (product_id, quantity_sold, selling_date, total_price)

Answer the user's questions about inventory, products, and sales in a clear, concise manner.
DO NOT perform any trend analysis or make restocking recommendations unless explicitly requested.`

const trendPrompt = `You are an AI assistant for a small grocery store inventory management system. You have access to the following collections:

- products: product information (barcode_id, name, price, quantity, entry_date)
- sales: sales information (product_id, quantity_sold, selling_date, total_price)

IMPORTANT CAPABILITIES:
1. Provide detailed inventory analysis based on sales trends
2. Recommend products to restock based on sales volume, sales velocity, and current inventory levels
3. Identify slow-moving products that should not be restocked
4. Calculate optimal reorder quantities based on historical sales data

Always include specific data points to support your recommendations, such as exact sales numbers, days between entry and sale, and current stock levels.`

type Service interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
}

type productStore interface {
	Scan(ctx context.Context) ([]domain.Product, error)
}

type saleStore interface {
	Scan(ctx context.Context) ([]domain.Sale, error)
}

type recommender interface {
	Recommend(records []domain.VelocityRecord) domain.Recommendations
}

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type historyStore interface {
	Put(ctx context.Context, e *domain.ChatExchange) error
}

type service struct {
	products  productStore
	sales     saleStore
	engine    recommender
	completer completer
	history   historyStore // nil disables conversation persistence
}

type ServiceDeps struct {
	ProductRepo productStore
	SaleRepo    saleStore
	Engine      recommender
	Completer   completer
	History     historyStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		products:  deps.ProductRepo,
		sales:     deps.SaleRepo,
		engine:    deps.Engine,
		completer: deps.Completer,
		history:   deps.History,
	}
}

// ProcessQuery assembles a prompt from the current snapshots — with the
// restocking analysis attached for trend queries — asks the model, and stores
// the exchange. History persistence is best effort.
func (s *service) ProcessQuery(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("empty query: %w", domain.ErrBadRequest)
	}

	products, err := s.products.Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("scan products: %w", err)
	}
	sales, err := s.sales.Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("scan sales: %w", err)
	}

	var b strings.Builder
	if IsTrendQuery(query) {
		b.WriteString(trendPrompt)
		b.WriteString("\n\nHere is the current database state:\n")
		writeJSONSection(&b, "Products", products)
		writeJSONSection(&b, "Sales", sales)
		records, _ := analytics.Velocity(products, sales)
		writeJSONSection(&b, "Sales Trend Analysis", s.engine.Recommend(records))
	} else {
		b.WriteString(basePrompt)
		b.WriteString("\n\nHere is the current database state:\n")
		writeJSONSection(&b, "Products", products)
		writeJSONSection(&b, "Sales", sales)
	}
	b.WriteString("\nUser question: ")
	b.WriteString(query)

	response, err := s.completer.Complete(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("process query: %w", err)
	}

	if s.history != nil {
		exchange := &domain.ChatExchange{
			ExchangeID: id.New(),
			Query:      query,
			Response:   response,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.history.Put(ctx, exchange); err != nil {
			slog.Error("could not store chat exchange", "err", err)
		}
	}
	return response, nil
}

// IsTrendQuery reports whether the free-text query asks for trend analysis.
func IsTrendQuery(query string) bool {
	q := strings.ToLower(query)
	for _, phrase := range trendPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

func writeJSONSection(b *strings.Builder, label string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte("[]")
	}
	fmt.Fprintf(b, "%s: %s\n", label, data)
}
