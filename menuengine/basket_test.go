package menuengine

import (
	"testing"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderItem(orderID, name string) models.OrderItem {
	return models.OrderItem{OrderID: orderID, ItemName: name, Quantity: 1}
}

func TestCountPairs(t *testing.T) {
	items := []models.OrderItem{
		orderItem("o1", "pizza"),
		orderItem("o1", "beer"),
		orderItem("o2", "pizza"),
		orderItem("o2", "beer"),
		orderItem("o2", "tiramisu"),
		orderItem("o3", "pizza"),
		orderItem("o4", "beer"),
		orderItem("o4", "pizza"),
	}

	pairs := CountPairs(items, 10)

	require.NotEmpty(t, pairs)
	top := pairs[0]
	assert.Equal(t, "beer", top.ItemA, "pair names are ordered lexicographically")
	assert.Equal(t, "pizza", top.ItemB)
	assert.Equal(t, 3, top.Frequency)
	assert.Equal(t, 30.0, top.Support)

	// o2 contributes beer+tiramisu and pizza+tiramisu once each
	require.Len(t, pairs, 3)
	assert.Equal(t, 1, pairs[1].Frequency)
	assert.Equal(t, 1, pairs[2].Frequency)
}

func TestCountPairsDedupsWithinOrder(t *testing.T) {
	// the same line item twice in one order still counts the pair once
	items := []models.OrderItem{
		orderItem("o1", "pizza"),
		orderItem("o1", "pizza"),
		orderItem("o1", "beer"),
	}

	pairs := CountPairs(items, 4)

	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Frequency)
	assert.Equal(t, 25.0, pairs[0].Support)
}

func TestCountPairsSortedByFrequencyThenName(t *testing.T) {
	items := []models.OrderItem{
		orderItem("o1", "a"), orderItem("o1", "b"),
		orderItem("o2", "a"), orderItem("o2", "b"),
		orderItem("o3", "c"), orderItem("o3", "d"),
		orderItem("o4", "a"), orderItem("o4", "c"),
	}

	pairs := CountPairs(items, 4)

	require.Len(t, pairs, 3)
	assert.Equal(t, [2]string{"a", "b"}, [2]string{pairs[0].ItemA, pairs[0].ItemB})
	// ties broken by name so output is deterministic
	assert.Equal(t, [2]string{"a", "c"}, [2]string{pairs[1].ItemA, pairs[1].ItemB})
	assert.Equal(t, [2]string{"c", "d"}, [2]string{pairs[2].ItemA, pairs[2].ItemB})
}

func TestCountPairsEmpty(t *testing.T) {
	assert.Empty(t, CountPairs(nil, 10))
	assert.Empty(t, CountPairs([]models.OrderItem{orderItem("o1", "pizza")}, 0))

	// single-item orders produce no pairs
	pairs := CountPairs([]models.OrderItem{orderItem("o1", "pizza")}, 5)
	assert.Empty(t, pairs)
}
