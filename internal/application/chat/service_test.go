package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-inventory-agent/internal/application/analytics"
	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Scan(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if p, _ := args.Get(0).([]domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSaleStore struct{ mock.Mock }

func (m *mockSaleStore) Scan(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).([]domain.Sale); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCompleter struct{ mock.Mock }

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockHistoryStore struct{ mock.Mock }

func (m *mockHistoryStore) Put(ctx context.Context, e *domain.ChatExchange) error {
	return m.Called(ctx, e).Error(0)
}

// --- helpers ---

func newService(ps *mockProductStore, ss *mockSaleStore, c *mockCompleter, h *mockHistoryStore) Service {
	deps := ServiceDeps{
		ProductRepo: ps,
		SaleRepo:    ss,
		Engine:      analytics.NewEngine(config.Thresholds{FastMovingMaxDays: 7, FastMovingMaxStock: 20, SlowMovingMinDays: 20, SlowMovingMinStock: 10, ReorderFactor: 1.5}),
		Completer:   c,
	}
	if h != nil {
		deps.History = h
	}
	return NewService(deps)
}

func emptySnapshots(ps *mockProductStore, ss *mockSaleStore) {
	ps.On("Scan", mock.Anything).Return([]domain.Product{}, nil)
	ss.On("Scan", mock.Anything).Return([]domain.Sale{}, nil)
}

// --- tests ---

func TestIsTrendQuery(t *testing.T) {
	assert.True(t, IsTrendQuery("What should I restock this week?"))
	assert.True(t, IsTrendQuery("show me SALES VELOCITY"))
	assert.False(t, IsTrendQuery("how many units of shampoo are left?"))
}

func TestProcessQuery_EmptyQuery(t *testing.T) {
	svc := newService(&mockProductStore{}, &mockSaleStore{}, &mockCompleter{}, nil)

	_, err := svc.ProcessQuery(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestProcessQuery_PlainQueryOmitsTrendAnalysis(t *testing.T) {
	ps, ss, c := &mockProductStore{}, &mockSaleStore{}, &mockCompleter{}
	emptySnapshots(ps, ss)
	c.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return !strings.Contains(prompt, "Sales Trend Analysis") &&
			strings.Contains(prompt, "how many units of shampoo are left?")
	})).Return("12 units", nil)

	svc := newService(ps, ss, c, nil)
	resp, err := svc.ProcessQuery(context.Background(), "how many units of shampoo are left?")

	require.NoError(t, err)
	assert.Equal(t, "12 units", resp)
	c.AssertExpectations(t)
}

func TestProcessQuery_TrendQueryAttachesAnalysis(t *testing.T) {
	ps, ss, c := &mockProductStore{}, &mockSaleStore{}, &mockCompleter{}
	emptySnapshots(ps, ss)
	c.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Sales Trend Analysis")
	})).Return("restock the shampoo", nil)

	svc := newService(ps, ss, c, nil)
	resp, err := svc.ProcessQuery(context.Background(), "what should I restock?")

	require.NoError(t, err)
	assert.Equal(t, "restock the shampoo", resp)
	c.AssertExpectations(t)
}

func TestProcessQuery_StoresExchange(t *testing.T) {
	ps, ss, c, h := &mockProductStore{}, &mockSaleStore{}, &mockCompleter{}, &mockHistoryStore{}
	emptySnapshots(ps, ss)
	c.On("Complete", mock.Anything, mock.Anything).Return("answer", nil)
	h.On("Put", mock.Anything, mock.MatchedBy(func(e *domain.ChatExchange) bool {
		return e.Query == "hello" && e.Response == "answer" && e.ExchangeID != ""
	})).Return(nil)

	svc := newService(ps, ss, c, h)
	_, err := svc.ProcessQuery(context.Background(), "hello")

	require.NoError(t, err)
	h.AssertExpectations(t)
}

func TestProcessQuery_HistoryFailureIsNotFatal(t *testing.T) {
	ps, ss, c, h := &mockProductStore{}, &mockSaleStore{}, &mockCompleter{}, &mockHistoryStore{}
	emptySnapshots(ps, ss)
	c.On("Complete", mock.Anything, mock.Anything).Return("answer", nil)
	h.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := newService(ps, ss, c, h)
	resp, err := svc.ProcessQuery(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "answer", resp)
}

func TestProcessQuery_CompleterErrorPropagates(t *testing.T) {
	ps, ss, c := &mockProductStore{}, &mockSaleStore{}, &mockCompleter{}
	emptySnapshots(ps, ss)
	c.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("model unavailable"))

	svc := newService(ps, ss, c, nil)
	_, err := svc.ProcessQuery(context.Background(), "hello")

	require.Error(t, err)
}

func TestProcessQuery_StoreErrorPropagates(t *testing.T) {
	ps, ss := &mockProductStore{}, &mockSaleStore{}
	ps.On("Scan", mock.Anything).Return(nil, errors.New("dynamo unreachable"))

	svc := newService(ps, ss, &mockCompleter{}, nil)
	_, err := svc.ProcessQuery(context.Background(), "hello")

	require.Error(t, err)
}
