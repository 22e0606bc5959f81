package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RuleConfig holds the user-adjustable thresholds driving the recommendation
// engine. JSON field names match what older dashboard builds persisted
// client-side, so stored configs keep round-tripping.
//
// PromoteMinQuantity, PromoteMinRevenue and CutMaxRevenue are schema-only:
// promotion is gated by quadrant membership alone and no cut rule looks at
// revenue. They stay in the schema so stored configs don't break.
type RuleConfig struct {
	Version            int     `json:"version"`
	PromoteMinQuantity int     `json:"promoteMinQuantity"` // reserved, no effect
	PromoteMinRevenue  int     `json:"promoteMinRevenue"`  // reserved, no effect
	CutMaxQuantity     float64 `json:"cutMaxQuantity"`     // % of median quantity
	CutMaxRevenue      float64 `json:"cutMaxRevenue"`      // reserved, no effect
	CutDaysInactive    int     `json:"cutDaysInactive"`    // days
	BundleMinFrequency int     `json:"bundleMinFrequency"` // co-occurrence count
	BundleMinSupport   float64 `json:"bundleMinSupport"`   // %
}

func (c RuleConfig) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *RuleConfig) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		return nil
	default:
		return errors.New("unsupported type for RuleConfig")
	}
	return json.Unmarshal(b, c)
}

// RestaurantSettings is the per-tenant settings row; RuleConfig lives in a
// JSONB column so legacy payloads survive schema drift and get migrated on
// read.
type RestaurantSettings struct {
	RestaurantID string     `json:"restaurant_id" gorm:"primaryKey"`
	RuleConfig   RuleConfig `json:"rule_config" gorm:"type:jsonb"`
	UpdatedBy    string     `json:"updated_by"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}

// UpdateRuleConfigRequest uses pointers so a PUT can change a subset
type UpdateRuleConfigRequest struct {
	PromoteMinQuantity *int     `json:"promoteMinQuantity,omitempty"`
	PromoteMinRevenue  *int     `json:"promoteMinRevenue,omitempty"`
	CutMaxQuantity     *float64 `json:"cutMaxQuantity,omitempty" binding:"omitempty,gt=0,lte=100"`
	CutMaxRevenue      *float64 `json:"cutMaxRevenue,omitempty" binding:"omitempty,gt=0,lte=100"`
	CutDaysInactive    *int     `json:"cutDaysInactive,omitempty" binding:"omitempty,gt=0"`
	BundleMinFrequency *int     `json:"bundleMinFrequency,omitempty" binding:"omitempty,gt=0"`
	BundleMinSupport   *float64 `json:"bundleMinSupport,omitempty" binding:"omitempty,gte=0,lte=100"`
}
