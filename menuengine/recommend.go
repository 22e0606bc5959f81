package menuengine

import (
	"fmt"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

// Per-rule output caps. More qualifying items than the cap simply fall off
// the end of the list; callers wanting "best first" must pre-sort upstream
// (the aggregation query orders by revenue DESC for exactly this reason).
const (
	maxPromoteStars   = 5
	maxPromotePuzzles = 3
	maxCuts           = 5
	maxBundles        = 5
)

// support at or above this makes a bundle suggestion high priority
const bundleHighSupport = 10.0

// Recommend turns a classification report plus co-purchase pairs into a
// prioritized action list. Stateless: rebuilt from scratch on every call,
// inputs never mutated, items taken in input order within each rule.
func Recommend(report models.MenuEngineeringReport, pairs []models.BundlePair, cfg models.RuleConfig) []models.Recommendation {
	return RecommendAt(time.Now().UTC(), report, pairs, cfg)
}

// RecommendAt is Recommend with an explicit clock for the inactivity rule.
func RecommendAt(now time.Time, report models.MenuEngineeringReport, pairs []models.BundlePair, cfg models.RuleConfig) []models.Recommendation {
	recs := []models.Recommendation{}

	recs = append(recs, promoteStars(report)...)
	recs = append(recs, promotePuzzles(report)...)
	recs = append(recs, cutDogs(now, report, cfg)...)
	recs = append(recs, bundleOpportunities(pairs, cfg)...)

	return recs
}

// promoteStars: up to 5 stars, high priority. Gated on quadrant membership
// alone; cfg.PromoteMinQuantity / PromoteMinRevenue deliberately unused.
func promoteStars(report models.MenuEngineeringReport) []models.Recommendation {
	recs := []models.Recommendation{}
	for _, item := range report.Items {
		if item.Quadrant != models.QuadrantStar {
			continue
		}
		if len(recs) >= maxPromoteStars {
			break
		}
		quantity := item.TotalQuantity
		revenue := item.TotalRevenue
		recs = append(recs, models.Recommendation{
			ID:       "promote-" + item.ItemName,
			Type:     models.RecommendationPromote,
			Priority: models.PriorityHigh,
			Title:    fmt.Sprintf("Push %s harder", item.ItemName),
			Description: fmt.Sprintf(
				"%s is a star: %d units sold and above-median profitability. Feature it on the menu, train staff to suggest it, keep it visible.",
				item.ItemName, item.TotalQuantity),
			ItemName: item.ItemName,
			Metrics: models.RecommendationMetrics{
				Quantity: &quantity,
				Revenue:  &revenue,
				Quadrant: item.Quadrant,
			},
		})
	}
	return recs
}

// promotePuzzles: up to 3 puzzles (profitable but under-ordered), medium.
func promotePuzzles(report models.MenuEngineeringReport) []models.Recommendation {
	recs := []models.Recommendation{}
	for _, item := range report.Items {
		if item.Quadrant != models.QuadrantPuzzle {
			continue
		}
		if len(recs) >= maxPromotePuzzles {
			break
		}
		quantity := item.TotalQuantity
		revenue := item.TotalRevenue
		recs = append(recs, models.Recommendation{
			ID:       "promote-" + item.ItemName,
			Type:     models.RecommendationPromote,
			Priority: models.PriorityMedium,
			Title:    fmt.Sprintf("Give %s more visibility", item.ItemName),
			Description: fmt.Sprintf(
				"%s earns well but only sold %d units. It may be buried on the menu or priced out of sight - reposition or promote it.",
				item.ItemName, item.TotalQuantity),
			ItemName: item.ItemName,
			Metrics: models.RecommendationMetrics{
				Quantity: &quantity,
				Revenue:  &revenue,
				Quadrant: item.Quadrant,
			},
		})
	}
	return recs
}

// cutDogs: dogs selling under cutMaxQuantity% of the median, up to 5.
// Escalates to high priority once the item has been inactive longer than
// cutDaysInactive.
func cutDogs(now time.Time, report models.MenuEngineeringReport, cfg models.RuleConfig) []models.Recommendation {
	threshold := report.MedianQuantity * cfg.CutMaxQuantity / 100

	recs := []models.Recommendation{}
	for _, item := range report.Items {
		if item.Quadrant != models.QuadrantDog {
			continue
		}
		if float64(item.TotalQuantity) >= threshold {
			continue
		}
		if len(recs) >= maxCuts {
			break
		}

		var daysSince *int
		if item.LastSaleDate != nil {
			d := int(now.Sub(*item.LastSaleDate).Hours() / 24)
			daysSince = &d
		}

		priority := models.PriorityMedium
		var description string
		if daysSince != nil && *daysSince > cfg.CutDaysInactive {
			priority = models.PriorityHigh
			description = fmt.Sprintf(
				"%s hasn't sold in %d days and sits well below the median. Remove it from the menu or replace it.",
				item.ItemName, *daysSince)
		} else {
			description = fmt.Sprintf(
				"%s sold only %d units, far below the median. Consider reworking the recipe, the price, or dropping it.",
				item.ItemName, item.TotalQuantity)
		}

		quantity := item.TotalQuantity
		revenue := item.TotalRevenue
		recs = append(recs, models.Recommendation{
			ID:          "cut-" + item.ItemName,
			Type:        models.RecommendationCut,
			Priority:    priority,
			Title:       fmt.Sprintf("Reconsider %s", item.ItemName),
			Description: description,
			ItemName:    item.ItemName,
			Metrics: models.RecommendationMetrics{
				Quantity:          &quantity,
				Revenue:           &revenue,
				Quadrant:          item.Quadrant,
				DaysSinceLastSale: daysSince,
			},
		})
	}
	return recs
}

// bundleOpportunities: pairs over both thresholds, up to 5. High priority
// when the pair shows up in 10%+ of orders.
func bundleOpportunities(pairs []models.BundlePair, cfg models.RuleConfig) []models.Recommendation {
	recs := []models.Recommendation{}
	for _, pair := range pairs {
		if pair.Frequency < cfg.BundleMinFrequency || pair.Support < cfg.BundleMinSupport {
			continue
		}
		if len(recs) >= maxBundles {
			break
		}

		priority := models.PriorityMedium
		if pair.Support >= bundleHighSupport {
			priority = models.PriorityHigh
		}

		frequency := pair.Frequency
		support := pair.Support
		recs = append(recs, models.Recommendation{
			ID:       "bundle-" + pair.ItemA + "-" + pair.ItemB,
			Type:     models.RecommendationBundle,
			Priority: priority,
			Title:    fmt.Sprintf("Bundle %s with %s", pair.ItemA, pair.ItemB),
			Description: fmt.Sprintf(
				"%s and %s were ordered together %d times (%.1f%% of orders). Offer them as a combo at a small discount.",
				pair.ItemA, pair.ItemB, pair.Frequency, pair.Support),
			ItemA: pair.ItemA,
			ItemB: pair.ItemB,
			Metrics: models.RecommendationMetrics{
				Frequency: &frequency,
				Support:   &support,
			},
		})
	}
	return recs
}
