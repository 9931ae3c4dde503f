package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []OrderItem {
	return []OrderItem{
		{ProductID: uuid.New(), Name: "Collar", Price: decimal.NewFromInt(150), Quantity: 2},
		{ProductID: uuid.New(), Name: "Anillo", Price: decimal.RequireFromString("75.50"), Quantity: 1},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("totals the items", func(t *testing.T) {
		o, err := NewOrder(uuid.New(), testItems(), "Calle 5, Oaxaca")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
		assert.True(t, o.Total.Equal(decimal.RequireFromString("375.50")), "got %s", o.Total)
	})

	t.Run("rejects empty orders", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		items := testItems()
		items[0].Quantity = 0
		_, err := NewOrder(uuid.New(), items, "")
		assert.Error(t, err)
	})
}

func TestOrderTransition(t *testing.T) {
	o, err := NewOrder(uuid.New(), testItems(), "")
	require.NoError(t, err)

	require.NoError(t, o.Transition(StatusProcessing))
	require.NoError(t, o.Transition(StatusShipped))
	require.NoError(t, o.Transition(StatusDelivered))

	assert.Error(t, o.Transition(StatusCancelled), "delivered is terminal")
	assert.Error(t, o.Transition(OrderStatus("Perdido")))
}

func TestOrderCancellation(t *testing.T) {
	o, err := NewOrder(uuid.New(), testItems(), "")
	require.NoError(t, err)

	require.NoError(t, o.Transition(StatusCancelled))
	assert.Error(t, o.Transition(StatusProcessing))
}
