package menuengine

import (
	"testing"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stat(name string, quantity, price int64) models.MenuItemStat {
	return models.MenuItemStat{
		ItemName:      name,
		TotalQuantity: quantity,
		AvgPrice:      price,
		TotalRevenue:  quantity * price,
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 7.0, median([]float64{7}))
	assert.Equal(t, 7.5, median([]float64{10, 5}), "even length averages the two middle values")
	assert.Equal(t, 5.0, median([]float64{9, 1, 5}))
	assert.Equal(t, 3.5, median([]float64{4, 1, 2, 100}))

	// input must not be reordered
	values := []float64{9, 1, 5}
	median(values)
	assert.Equal(t, []float64{9, 1, 5}, values)
}

func TestClassifyEmptyInput(t *testing.T) {
	report := Classify(nil)

	assert.Empty(t, report.Items)
	assert.Zero(t, report.MedianQuantity)
	assert.Zero(t, report.MedianMetric)
	assert.Equal(t, models.MetricPolicyPrice, report.MetricPolicy)
	for _, q := range []models.Quadrant{models.QuadrantStar, models.QuadrantPlowhorse, models.QuadrantPuzzle, models.QuadrantDog} {
		assert.Equal(t, 0, report.QuadrantCounts[q])
	}
}

func TestClassifyQuadrantBoundaries(t *testing.T) {
	report := Classify([]models.MenuItemStat{
		stat("carbonara", 10, 100),
		stat("margherita", 10, 50),
		stat("tiramisu", 5, 100),
		stat("minestrone", 5, 50),
	})

	require.Len(t, report.Items, 4)
	assert.Equal(t, 7.5, report.MedianQuantity)
	assert.Equal(t, 75.0, report.MedianMetric)

	assert.Equal(t, models.QuadrantStar, report.Items[0].Quadrant)
	assert.Equal(t, models.QuadrantPlowhorse, report.Items[1].Quadrant)
	assert.Equal(t, models.QuadrantPuzzle, report.Items[2].Quadrant)
	assert.Equal(t, models.QuadrantDog, report.Items[3].Quadrant)
}

func TestClassifyTieBreakGoesHigh(t *testing.T) {
	// odd-length set so the middle item sits exactly on both medians
	report := Classify([]models.MenuItemStat{
		stat("high", 20, 200),
		stat("exact", 10, 100),
		stat("low", 5, 50),
	})

	require.Len(t, report.Items, 3)
	assert.Equal(t, 10.0, report.MedianQuantity)
	assert.Equal(t, 100.0, report.MedianMetric)
	assert.Equal(t, models.QuadrantStar, report.Items[1].Quadrant,
		"an item exactly at both medians must be a star")
}

func TestClassifyTotalityAndExclusivity(t *testing.T) {
	stats := []models.MenuItemStat{}
	for i := int64(1); i <= 17; i++ {
		stats = append(stats, stat(string(rune('a'+i)), i*3%13, i*7%29*10))
	}

	report := Classify(stats)

	require.Len(t, report.Items, len(stats))
	total := 0
	for _, count := range report.QuadrantCounts {
		total += count
	}
	assert.Equal(t, len(stats), total, "quadrant counts must sum to the item count")

	for _, item := range report.Items {
		assert.Contains(t, []models.Quadrant{
			models.QuadrantStar, models.QuadrantPlowhorse,
			models.QuadrantPuzzle, models.QuadrantDog,
		}, item.Quadrant)
	}
}

func TestClassifyPreservesInputOrder(t *testing.T) {
	stats := []models.MenuItemStat{
		stat("zeta", 1, 10),
		stat("alpha", 50, 900),
		stat("mike", 20, 400),
	}

	report := Classify(stats)

	require.Len(t, report.Items, 3)
	assert.Equal(t, "zeta", report.Items[0].ItemName)
	assert.Equal(t, "alpha", report.Items[1].ItemName)
	assert.Equal(t, "mike", report.Items[2].ItemName)
}

func TestClassifyMetricPolicy(t *testing.T) {
	cost := func(v int64) *int64 { return &v }

	t.Run("price proxy when cost data is sparse", func(t *testing.T) {
		a := stat("a", 10, 100)
		a.CostCents = cost(40)
		stats := []models.MenuItemStat{a, stat("b", 10, 100), stat("c", 5, 50)}

		report := Classify(stats)

		assert.Equal(t, models.MetricPolicyPrice, report.MetricPolicy)
		assert.Equal(t, 100.0, report.Items[0].Metric, "cost ignored under price policy")
	})

	t.Run("margin when a majority of items carry cost", func(t *testing.T) {
		a := stat("a", 10, 100)
		a.CostCents = cost(40)
		b := stat("b", 10, 80)
		b.CostCents = cost(10)
		stats := []models.MenuItemStat{a, b, stat("c", 5, 50)}

		report := Classify(stats)

		assert.Equal(t, models.MetricPolicyMargin, report.MetricPolicy)
		assert.Equal(t, 60.0, report.Items[0].Metric)
		assert.Equal(t, 70.0, report.Items[1].Metric)
		assert.Equal(t, 50.0, report.Items[2].Metric, "missing cost treated as zero under margin policy")
	})
}
