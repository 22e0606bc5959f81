package models

import "time"

const (
	ResourceTypeMenuItem = "menu_item"
	ResourceTypeImport   = "import"
	ResourceTypeSettings = "settings"
	ResourceTypeInvite   = "invite"
)

// AuditLog records every mutating dashboard action per restaurant
type AuditLog struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"index"`
	UserID       string    `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	Action       string    `json:"action"` // created | updated | deleted | uploaded
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
