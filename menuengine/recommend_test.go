package menuengine

import (
	"fmt"
	"testing"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func classified(name string, quadrant models.Quadrant, quantity int64) models.ClassifiedItem {
	return models.ClassifiedItem{
		MenuItemStat: models.MenuItemStat{
			ItemName:      name,
			TotalQuantity: quantity,
			TotalRevenue:  quantity * 100,
		},
		Quadrant: quadrant,
	}
}

func reportWith(items ...models.ClassifiedItem) models.MenuEngineeringReport {
	return models.MenuEngineeringReport{Items: items, MedianQuantity: 100, MedianMetric: 100}
}

func TestRecommendPromoteStars(t *testing.T) {
	report := reportWith(
		classified("carbonara", models.QuadrantStar, 120),
		classified("margherita", models.QuadrantPlowhorse, 150),
		classified("tiramisu", models.QuadrantStar, 110),
	)

	recs := RecommendAt(testNow, report, nil, DefaultRuleConfig())

	require.Len(t, recs, 2)
	assert.Equal(t, "promote-carbonara", recs[0].ID)
	assert.Equal(t, models.RecommendationPromote, recs[0].Type)
	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
	require.NotNil(t, recs[0].Metrics.Quantity)
	assert.Equal(t, int64(120), *recs[0].Metrics.Quantity)
	assert.Equal(t, models.QuadrantStar, recs[0].Metrics.Quadrant)
	assert.Equal(t, "promote-tiramisu", recs[1].ID)
}

func TestRecommendPromotePuzzles(t *testing.T) {
	report := reportWith(
		classified("ossobuco", models.QuadrantPuzzle, 20),
	)

	recs := RecommendAt(testNow, report, nil, DefaultRuleConfig())

	require.Len(t, recs, 1)
	assert.Equal(t, models.RecommendationPromote, recs[0].Type)
	assert.Equal(t, models.PriorityMedium, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "only sold 20 units")
}

func TestRecommendCutPriorityEscalation(t *testing.T) {
	lastSale := func(daysAgo int) *time.Time {
		d := testNow.AddDate(0, 0, -daysAgo)
		return &d
	}

	t.Run("inactive dog escalates to high", func(t *testing.T) {
		dog := classified("aspic", models.QuadrantDog, 1)
		dog.LastSaleDate = lastSale(45)

		recs := RecommendAt(testNow, reportWith(dog), nil, DefaultRuleConfig())

		require.Len(t, recs, 1)
		assert.Equal(t, models.RecommendationCut, recs[0].Type)
		assert.Equal(t, models.PriorityHigh, recs[0].Priority)
		assert.Contains(t, recs[0].Description, "hasn't sold in 45 days")
		require.NotNil(t, recs[0].Metrics.DaysSinceLastSale)
		assert.Equal(t, 45, *recs[0].Metrics.DaysSinceLastSale)
	})

	t.Run("recently sold dog stays medium", func(t *testing.T) {
		dog := classified("aspic", models.QuadrantDog, 1)
		dog.LastSaleDate = lastSale(5)

		recs := RecommendAt(testNow, reportWith(dog), nil, DefaultRuleConfig())

		require.Len(t, recs, 1)
		assert.Equal(t, models.PriorityMedium, recs[0].Priority)
		assert.Contains(t, recs[0].Description, "far below the median")
	})

	t.Run("dog with no sale date stays medium", func(t *testing.T) {
		dog := classified("aspic", models.QuadrantDog, 1)

		recs := RecommendAt(testNow, reportWith(dog), nil, DefaultRuleConfig())

		require.Len(t, recs, 1)
		assert.Equal(t, models.PriorityMedium, recs[0].Priority)
		assert.Nil(t, recs[0].Metrics.DaysSinceLastSale)
	})
}

func TestRecommendCutThreshold(t *testing.T) {
	// median 100, default cutMaxQuantity 20% -> threshold 20 units
	under := classified("aspic", models.QuadrantDog, 19)
	exact := classified("haggis", models.QuadrantDog, 20)
	over := classified("offal", models.QuadrantDog, 21)

	recs := RecommendAt(testNow, reportWith(under, exact, over), nil, DefaultRuleConfig())

	require.Len(t, recs, 1, "only strictly-below-threshold dogs are cut candidates")
	assert.Equal(t, "cut-aspic", recs[0].ID)
}

func TestRecommendBundleThresholds(t *testing.T) {
	pairs := []models.BundlePair{
		{ItemA: "espresso", ItemB: "tiramisu", Frequency: 2, Support: 1.0},  // below min frequency
		{ItemA: "carbonara", ItemB: "wine", Frequency: 5, Support: 0.6},     // qualifies, medium
		{ItemA: "pizza", ItemB: "beer", Frequency: 40, Support: 12.5},       // qualifies, high
		{ItemA: "bread", ItemB: "olives", Frequency: 10, Support: 0.4},      // below min support
	}

	recs := RecommendAt(testNow, models.MenuEngineeringReport{}, pairs, DefaultRuleConfig())

	require.Len(t, recs, 2)
	assert.Equal(t, "bundle-carbonara-wine", recs[0].ID)
	assert.Equal(t, models.PriorityMedium, recs[0].Priority)
	assert.Equal(t, "bundle-pizza-beer", recs[1].ID)
	assert.Equal(t, models.PriorityHigh, recs[1].Priority)
	require.NotNil(t, recs[1].Metrics.Support)
	assert.Equal(t, 12.5, *recs[1].Metrics.Support)
}

func TestRecommendCaps(t *testing.T) {
	var items []models.ClassifiedItem
	for i := 0; i < 12; i++ {
		items = append(items, classified(fmt.Sprintf("star-%d", i), models.QuadrantStar, 200))
		items = append(items, classified(fmt.Sprintf("puzzle-%d", i), models.QuadrantPuzzle, 10))
		items = append(items, classified(fmt.Sprintf("dog-%d", i), models.QuadrantDog, 1))
	}
	var pairs []models.BundlePair
	for i := 0; i < 12; i++ {
		pairs = append(pairs, models.BundlePair{
			ItemA: fmt.Sprintf("a-%d", i), ItemB: fmt.Sprintf("b-%d", i),
			Frequency: 20, Support: 5,
		})
	}

	recs := RecommendAt(testNow, reportWith(items...), pairs, DefaultRuleConfig())

	byType := map[string][]models.Recommendation{}
	for _, r := range recs {
		key := r.Type
		if r.Type == models.RecommendationPromote {
			key = r.Type + "-" + r.Priority
		}
		byType[key] = append(byType[key], r)
	}

	assert.Len(t, byType["promote-high"], 5, "star promotions capped at 5")
	assert.Len(t, byType["promote-medium"], 3, "puzzle promotions capped at 3")
	assert.Len(t, byType[models.RecommendationCut], 5, "cuts capped at 5")
	assert.Len(t, byType[models.RecommendationBundle], 5, "bundles capped at 5")
}

func TestRecommendPreservesInputOrder(t *testing.T) {
	report := reportWith(
		classified("later", models.QuadrantStar, 120),
		classified("earlier", models.QuadrantStar, 500),
	)

	recs := RecommendAt(testNow, report, nil, DefaultRuleConfig())

	require.Len(t, recs, 2)
	assert.Equal(t, "promote-later", recs[0].ID, "engine takes items in input order, no internal sort")
	assert.Equal(t, "promote-earlier", recs[1].ID)
}

func TestRecommendEmptyInputs(t *testing.T) {
	recs := RecommendAt(testNow, models.MenuEngineeringReport{}, nil, DefaultRuleConfig())
	assert.Empty(t, recs)
	assert.NotNil(t, recs, "empty state is an empty list, not nil")
}
