// Package menuengine holds the menu engineering core: quadrant
// classification, rule-based recommendations and market-basket pair
// counting. Everything here is pure computation over slices the caller
// already scoped to one restaurant and time window.
package menuengine

import (
	"sort"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

// Classify assigns every stat a quadrant using two medians: quantity and a
// profitability metric. Boundary-inclusive on both axes, so an item sitting
// exactly on both medians is a star.
//
// The profitability metric is avg price by default. When a majority of the
// input items carry cost data the whole pass switches to margin
// (price - cost, missing cost treated as zero); the two proxies are never
// mixed per-item within one pass.
//
// Classify never sorts the input; items come back in the order they arrived.
// An empty input yields an empty report, not an error.
func Classify(stats []models.MenuItemStat) models.MenuEngineeringReport {
	report := models.MenuEngineeringReport{
		Items:        []models.ClassifiedItem{},
		MetricPolicy: models.MetricPolicyPrice,
		QuadrantCounts: map[models.Quadrant]int{
			models.QuadrantStar:      0,
			models.QuadrantPlowhorse: 0,
			models.QuadrantPuzzle:    0,
			models.QuadrantDog:       0,
		},
	}
	if len(stats) == 0 {
		return report
	}

	report.MetricPolicy = pickMetricPolicy(stats)

	quantities := make([]float64, 0, len(stats))
	metrics := make([]float64, 0, len(stats))
	for _, s := range stats {
		quantities = append(quantities, float64(s.TotalQuantity))
		metrics = append(metrics, metricValue(s, report.MetricPolicy))
	}

	report.MedianQuantity = median(quantities)
	report.MedianMetric = median(metrics)

	for i, s := range stats {
		item := models.ClassifiedItem{
			MenuItemStat: s,
			Metric:       metrics[i],
		}

		highQuantity := float64(s.TotalQuantity) >= report.MedianQuantity
		highMetric := item.Metric >= report.MedianMetric

		switch {
		case highQuantity && highMetric:
			item.Quadrant = models.QuadrantStar
		case highQuantity:
			item.Quadrant = models.QuadrantPlowhorse
		case highMetric:
			item.Quadrant = models.QuadrantPuzzle
		default:
			item.Quadrant = models.QuadrantDog
		}

		report.Items = append(report.Items, item)
		report.QuadrantCounts[item.Quadrant]++
	}

	return report
}

// pickMetricPolicy switches to margin only when more than half the active
// items have a cost override, so one costed item can't reshape the axis for
// the whole set.
func pickMetricPolicy(stats []models.MenuItemStat) models.MetricPolicy {
	withCost := 0
	for _, s := range stats {
		if s.CostCents != nil {
			withCost++
		}
	}
	if withCost*2 > len(stats) {
		return models.MetricPolicyMargin
	}
	return models.MetricPolicyPrice
}

func metricValue(s models.MenuItemStat, policy models.MetricPolicy) float64 {
	if policy == models.MetricPolicyMargin {
		cost := int64(0)
		if s.CostCents != nil {
			cost = *s.CostCents
		}
		return float64(s.AvgPrice - cost)
	}
	return float64(s.AvgPrice)
}

// median is the standard statistical median: sort ascending, odd length
// takes the middle value, even length averages the two middle values.
// Picking the lower middle instead would shift every quadrant boundary.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
