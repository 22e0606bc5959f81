package models

import "time"

// MenuItem is the menu card entry maintained by the owner. Sales rows
// reference items by name (CSV imports carry names, not IDs), so Name is
// unique per restaurant.
type MenuItem struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	RestaurantID  string     `json:"restaurant_id" gorm:"index:idx_menu_items_restaurant_name,unique"`
	Name          string     `json:"name" gorm:"index:idx_menu_items_restaurant_name,unique"`
	Category      string     `json:"category"`
	MacroCategory string     `json:"macro_category"`
	PriceCents    int64      `json:"price_cents"`
	CostCents     *int64     `json:"cost_cents,omitempty"`     // optional true-cost override
	CostPercent   *float64   `json:"cost_percent,omitempty"`   // cost as % of price, derived when CostCents set
	IsCoreMenu    bool       `json:"is_core_menu"`             // on the menu 6+ months
	IsCurrentMenu bool       `json:"is_current_menu"`          // currently offered
	PhotoURL      *string    `json:"photo_url,omitempty"`
	IntroducedAt  *time.Time `json:"introduced_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type CreateMenuItemRequest struct {
	Name          string   `json:"name" binding:"required,min=1"`
	Category      string   `json:"category" binding:"required"`
	MacroCategory string   `json:"macro_category"`
	PriceCents    int64    `json:"price_cents" binding:"required,min=1"`
	CostCents     *int64   `json:"cost_cents,omitempty"`
	IsCoreMenu    *bool    `json:"is_core_menu,omitempty"`
	IsCurrentMenu *bool    `json:"is_current_menu,omitempty"`
	IntroducedAt  *string  `json:"introduced_at,omitempty"` // YYYY-MM-DD
}

type UpdateMenuItemRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	MacroCategory *string  `json:"macro_category,omitempty"`
	PriceCents    *int64   `json:"price_cents,omitempty"`
	CostCents     *int64   `json:"cost_cents,omitempty"`
	IsCoreMenu    *bool    `json:"is_core_menu,omitempty"`
	IsCurrentMenu *bool    `json:"is_current_menu,omitempty"`
	IntroducedAt  *string  `json:"introduced_at,omitempty"`
}
