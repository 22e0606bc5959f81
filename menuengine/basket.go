package menuengine

import (
	"sort"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

// CountPairs does the market-basket step: for every unordered pair of
// distinct item names appearing in the same order, count how many distinct
// orders contain both and express it as a support percentage of all orders
// in the window.
//
// Pair identity is unordered; pairs are emitted with ItemA < ItemB. Output
// is sorted by frequency descending (then name) so the recommendation
// engine's first-N truncation keeps the strongest pairs.
func CountPairs(items []models.OrderItem, totalOrders int) []models.BundlePair {
	if totalOrders <= 0 || len(items) == 0 {
		return []models.BundlePair{}
	}

	// distinct item names per order
	byOrder := make(map[string]map[string]struct{})
	for _, it := range items {
		names, ok := byOrder[it.OrderID]
		if !ok {
			names = make(map[string]struct{})
			byOrder[it.OrderID] = names
		}
		names[it.ItemName] = struct{}{}
	}

	type pairKey struct{ a, b string }
	counts := make(map[pairKey]int)

	for _, names := range byOrder {
		if len(names) < 2 {
			continue
		}
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)

		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				counts[pairKey{list[i], list[j]}]++
			}
		}
	}

	pairs := make([]models.BundlePair, 0, len(counts))
	for key, freq := range counts {
		pairs = append(pairs, models.BundlePair{
			ItemA:     key.a,
			ItemB:     key.b,
			Frequency: freq,
			Support:   float64(freq) / float64(totalOrders) * 100,
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Frequency != pairs[j].Frequency {
			return pairs[i].Frequency > pairs[j].Frequency
		}
		if pairs[i].ItemA != pairs[j].ItemA {
			return pairs[i].ItemA < pairs[j].ItemA
		}
		return pairs[i].ItemB < pairs[j].ItemB
	})

	return pairs
}
