package notification

import (
	"testing"

	"github.com/go-inventory-agent/internal/config"
	"github.com/go-inventory-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(config.Thresholds{LowStock: 15})
}

func TestSynthesize_LowStockWarningOnly(t *testing.T) {
	s := newTestSynthesizer()

	out := s.Synthesize(
		[]domain.Product{{BarcodeID: "A", Name: "Product A", Quantity: 5}},
		domain.Recommendations{},
	)

	require.Len(t, out, 1)
	assert.Equal(t, domain.NotificationWarning, out[0].Type)
	assert.Equal(t, "A", out[0].ProductID)
	assert.Equal(t, "Low stock alert: Product A has only 5 units left", out[0].Message)
}

func TestSynthesize_StockAtThresholdNotWarned(t *testing.T) {
	s := newTestSynthesizer()

	out := s.Synthesize(
		[]domain.Product{{BarcodeID: "A", Name: "Product A", Quantity: 15}},
		domain.Recommendations{},
	)

	assert.Empty(t, out)
}

func TestSynthesize_FastMoverMessage(t *testing.T) {
	s := newTestSynthesizer()

	out := s.Synthesize(nil, domain.Recommendations{
		FastMoving: []domain.Recommendation{
			{ProductID: "A", Name: "Product A", DaysToSell: 4.25, RecommendedOrder: 12},
		},
	})

	require.Len(t, out, 1)
	assert.Equal(t, domain.NotificationInfo, out[0].Type)
	assert.Equal(t, "Product A is selling well (avg 4.2 days to sell). Consider ordering 12 more units.", out[0].Message)
}

func TestSynthesize_SlowMoverMessage(t *testing.T) {
	s := newTestSynthesizer()

	out := s.Synthesize(nil, domain.Recommendations{
		SlowMoving: []domain.Recommendation{
			{ProductID: "B", Name: "Product B", DaysToSell: 25.0},
		},
	})

	require.Len(t, out, 1)
	assert.Equal(t, domain.NotificationAlert, out[0].Type)
	assert.Equal(t, "Product B is moving slowly (avg 25.0 days to sell). Consider reducing stock.", out[0].Message)
}

func TestSynthesize_PrioritySortIsStable(t *testing.T) {
	s := newTestSynthesizer()

	// Production order is warning, info, alert; sorted output must be
	// warning, alert, info.
	out := s.Synthesize(
		[]domain.Product{{BarcodeID: "W", Name: "Warn", Quantity: 1}},
		domain.Recommendations{
			FastMoving: []domain.Recommendation{{ProductID: "I", Name: "Info", DaysToSell: 2, RecommendedOrder: 3}},
			SlowMoving: []domain.Recommendation{{ProductID: "A", Name: "Alert", DaysToSell: 30}},
		},
	)

	require.Len(t, out, 3)
	assert.Equal(t, domain.NotificationWarning, out[0].Type)
	assert.Equal(t, domain.NotificationAlert, out[1].Type)
	assert.Equal(t, domain.NotificationInfo, out[2].Type)
}

func TestSynthesize_RelativeOrderWithinTypePreserved(t *testing.T) {
	s := newTestSynthesizer()

	out := s.Synthesize(
		[]domain.Product{
			{BarcodeID: "A", Name: "First", Quantity: 2},
			{BarcodeID: "B", Name: "Second", Quantity: 3},
		},
		domain.Recommendations{},
	)

	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].ProductID)
	assert.Equal(t, "B", out[1].ProductID)
}
