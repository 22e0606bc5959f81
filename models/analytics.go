package models

// DashboardOverview represents the main analytics dashboard overview
type DashboardOverview struct {
	TotalRevenueCents    int64   `json:"total_revenue_cents"`    // Revenue in the window
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"` // % change vs previous window
	TotalOrders          int     `json:"total_orders"`           // Orders in the window
	OrdersGrowthPercent  float64 `json:"orders_growth_percent"`  // % change vs previous window
	AvgTicketCents       int64   `json:"avg_ticket_cents"`       // Revenue / orders
	ItemsSold            int     `json:"items_sold"`             // Units across all items
	ActiveItems          int     `json:"active_items"`           // Distinct items sold in the window
}

// TopItem represents a top performing menu item with sales and revenue metrics
type TopItem struct {
	ItemName       string  `json:"item_name"`
	Category       string  `json:"category"`
	OrderCount     int     `json:"order_count"`     // Distinct orders containing the item
	SalesCount     int     `json:"sales_count"`     // Units sold
	RevenueCents   int64   `json:"revenue_cents"`   // Revenue from the item
	RevenuePercent float64 `json:"revenue_percent"` // Share of window revenue
}

type MonthlyRevenueData struct {
	Month        string `json:"month"`         // Month abbreviation (Jan, Feb, etc.)
	MonthNumber  int    `json:"month_number"`  // Month number (1-12)
	Year         int    `json:"year"`
	RevenueCents int64  `json:"revenue_cents"` // Revenue for the month
	OrderCount   int    `json:"order_count"`
}
