package models

import "time"

// Quadrant is the BCG-style menu engineering label: popularity (quantity)
// crossed with profitability (price or margin), each relative to the median
// of the active item set.
type Quadrant string

const (
	QuadrantStar      Quadrant = "star"      // high quantity, high metric
	QuadrantPlowhorse Quadrant = "plowhorse" // high quantity, low metric
	QuadrantPuzzle    Quadrant = "puzzle"    // low quantity, high metric
	QuadrantDog       Quadrant = "dog"       // low quantity, low metric
)

// MetricPolicy says which profitability proxy a classification pass used
type MetricPolicy string

const (
	MetricPolicyPrice  MetricPolicy = "price"  // avg price as profit proxy
	MetricPolicyMargin MetricPolicy = "margin" // avg price minus cost
)

// MenuItemStat is one aggregated row per distinct item name for a
// restaurant/time window, produced by the SQL aggregation step and already
// filtered to the active set.
type MenuItemStat struct {
	ItemName      string     `json:"item_name"`
	Category      string     `json:"category"`
	MacroCategory string     `json:"macro_category"`
	TotalQuantity int64      `json:"total_quantity"`
	TotalRevenue  int64      `json:"total_revenue"` // cents
	AvgPrice      int64      `json:"avg_price"`     // cents
	OrderCount    int64      `json:"order_count"`
	FirstSaleDate *time.Time `json:"first_sale_date,omitempty"`
	LastSaleDate  *time.Time `json:"last_sale_date,omitempty"`
	IsCoreMenu    bool       `json:"is_core_menu"`
	IsCurrentMenu bool       `json:"is_current_menu"`
	CostCents     *int64     `json:"cost_cents,omitempty"`
	CostPercent   *float64   `json:"cost_percent,omitempty"`
}

// ClassifiedItem is a stat annotated with its quadrant and the metric value
// the classifier actually compared against the median.
type ClassifiedItem struct {
	MenuItemStat
	Quadrant Quadrant `json:"quadrant"`
	Metric   float64  `json:"metric"` // cents, per the report's MetricPolicy
}

// MenuEngineeringReport is the classifier output for one pass
type MenuEngineeringReport struct {
	Items          []ClassifiedItem `json:"items"`
	MedianQuantity float64          `json:"median_quantity"`
	MedianMetric   float64          `json:"median_metric"` // cents
	MetricPolicy   MetricPolicy     `json:"metric_policy"`
	QuadrantCounts map[Quadrant]int `json:"quadrant_counts"`
}

// BundlePair is an unordered co-purchase pair. ItemA < ItemB lexicographically.
type BundlePair struct {
	ItemA     string  `json:"item_a"`
	ItemB     string  `json:"item_b"`
	Frequency int     `json:"frequency"` // distinct orders containing both
	Support   float64 `json:"support"`   // % of all orders containing both
}

const (
	RecommendationPromote = "promote"
	RecommendationCut     = "cut"
	RecommendationBundle  = "bundle"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// RecommendationMetrics carries the numbers the suggestion was derived from
type RecommendationMetrics struct {
	Quantity          *int64   `json:"quantity,omitempty"`
	Revenue           *int64   `json:"revenue,omitempty"`
	Quadrant          Quadrant `json:"quadrant,omitempty"`
	DaysSinceLastSale *int     `json:"days_since_last_sale,omitempty"`
	Frequency         *int     `json:"frequency,omitempty"`
	Support           *float64 `json:"support,omitempty"`
}

// Recommendation is ephemeral: rebuilt on every call, never persisted.
// ID is only stable enough for list-rendering keys.
type Recommendation struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`     // promote | cut | bundle
	Priority    string                `json:"priority"` // high | medium | low
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ItemName    string                `json:"item_name,omitempty"`
	ItemA       string                `json:"item_a,omitempty"`
	ItemB       string                `json:"item_b,omitempty"`
	Metrics     RecommendationMetrics `json:"metrics"`
}
