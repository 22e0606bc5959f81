package models

import "time"

// Order is one imported POS ticket. Rows only ever arrive via CSV import,
// so the POS receipt number doubles as the dedup key per restaurant.
type Order struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"index:idx_orders_restaurant_receipt,unique"`
	ReceiptRef   string    `json:"receipt_ref" gorm:"index:idx_orders_restaurant_receipt,unique"`
	OrderedAt    time.Time `json:"ordered_at"`
	TotalCents   int64     `json:"total_cents"`
	ImportJobID  string    `json:"import_job_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of a ticket. ItemName is the join key against
// menu_items; quantity and amounts come straight from the CSV.
type OrderItem struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	OrderID        string    `json:"order_id" gorm:"index"`
	RestaurantID   string    `json:"restaurant_id" gorm:"index"`
	ItemName       string    `json:"item_name"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
	OrderedAt      time.Time `json:"ordered_at"` // denormalized from the order for window queries
	CreatedAt      time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderWithItems combines order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}
