package models

import "time"

// Restaurant is the tenant. Every dashboard row hangs off one restaurant.
type Restaurant struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	SlugName  string    `json:"slug_name"`
	Cuisine   *string   `json:"cuisine,omitempty"`
	Town      *string   `json:"town,omitempty"`
	Currency  string    `json:"currency"` // ISO 4217, amounts stored in minor units
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
