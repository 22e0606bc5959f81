package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

// StatsService materializes the per-item aggregates the menu engine
// consumes. Everything is scoped by restaurant ID and a half-open time
// window [from, to).
type StatsService struct{}

var statsService = &StatsService{}

func GetStatsService() *StatsService {
	return statsService
}

// ResolveWindow parses optional from/to query values (YYYY-MM-DD).
// Defaults to the trailing 30 days ending now.
func (s *StatsService) ResolveWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q", fromStr)
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q", toStr)
		}
		// inclusive day in the API, half-open in SQL
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("window is empty: from %s to %s", fromStr, toStr)
	}
	return from, to, nil
}

// MenuItemStats aggregates order items into one stat row per item name,
// joined against the menu card for lifecycle and cost fields. Ordered by
// revenue descending so downstream first-N truncation means "highest
// revenue first". onlyActive keeps items currently on the menu.
func (s *StatsService) MenuItemStats(ctx context.Context, restaurantID string, from, to time.Time, onlyActive bool) ([]models.MenuItemStat, error) {
	activeFilter := ""
	if onlyActive {
		activeFilter = "AND mi.is_current_menu IS TRUE"
	}

	stats := make([]models.MenuItemStat, 0)
	err := config.DashboardGorm.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			oi.item_name,
			COALESCE(mi.category, oi.category) AS category,
			COALESCE(mi.macro_category, '') AS macro_category,
			SUM(oi.quantity) AS total_quantity,
			SUM(oi.subtotal_cents) AS total_revenue,
			(SUM(oi.subtotal_cents) / NULLIF(SUM(oi.quantity), 0))::bigint AS avg_price,
			COUNT(DISTINCT oi.order_id) AS order_count,
			MIN(oi.ordered_at) AS first_sale_date,
			MAX(oi.ordered_at) AS last_sale_date,
			COALESCE(mi.is_core_menu, FALSE) AS is_core_menu,
			COALESCE(mi.is_current_menu, FALSE) AS is_current_menu,
			mi.cost_cents,
			mi.cost_percent
		FROM order_items oi
		LEFT JOIN menu_items mi
			ON mi.restaurant_id = oi.restaurant_id AND mi.name = oi.item_name
		WHERE oi.restaurant_id = ?
			AND oi.ordered_at >= ? AND oi.ordered_at < ?
			%s
		GROUP BY oi.item_name, mi.category, oi.category, mi.macro_category,
			mi.is_core_menu, mi.is_current_menu, mi.cost_cents, mi.cost_percent
		ORDER BY total_revenue DESC
	`, activeFilter), restaurantID, from, to).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate menu item stats: %w", err)
	}
	return stats, nil
}

// OrderItemsInWindow fetches the raw (order_id, item_name) rows feeding the
// market-basket step. Served off the pgx pool; the result only needs two
// columns and can be large.
func (s *StatsService) OrderItemsInWindow(ctx context.Context, restaurantID string, from, to time.Time) ([]models.OrderItem, int, error) {
	rows, err := config.DashboardDB.Query(ctx, `
		SELECT order_id, item_name
		FROM order_items
		WHERE restaurant_id = $1 AND ordered_at >= $2 AND ordered_at < $3
	`, restaurantID, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ItemName); err != nil {
			return nil, 0, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order items: %w", err)
	}

	var totalOrders int
	err = config.DashboardDB.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE restaurant_id = $1 AND ordered_at >= $2 AND ordered_at < $3
	`, restaurantID, from, to).Scan(&totalOrders)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	return items, totalOrders, nil
}
