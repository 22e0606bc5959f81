package menuengine

import (
	"encoding/json"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

// RuleConfigVersion is bumped whenever a field is added to the schema.
// Version 1 configs predate the version stamp itself.
const RuleConfigVersion = 2

// DefaultRuleConfig returns the thresholds used when a restaurant has never
// saved settings. Every field always has a default; a stored config missing
// a field picks it up through MigrateRuleConfig.
func DefaultRuleConfig() models.RuleConfig {
	return models.RuleConfig{
		Version:            RuleConfigVersion,
		PromoteMinQuantity: 100,
		PromoteMinRevenue:  100,
		CutMaxQuantity:     20,
		CutMaxRevenue:      20,
		CutDaysInactive:    30,
		BundleMinFrequency: 3,
		BundleMinSupport:   0.5,
	}
}

// rawRuleConfig distinguishes "field absent" from "field zero" when reading
// stored payloads of any age.
type rawRuleConfig struct {
	Version            *int     `json:"version"`
	PromoteMinQuantity *int     `json:"promoteMinQuantity"`
	PromoteMinRevenue  *int     `json:"promoteMinRevenue"`
	CutMaxQuantity     *float64 `json:"cutMaxQuantity"`
	CutMaxRevenue      *float64 `json:"cutMaxRevenue"`
	CutDaysInactive    *int     `json:"cutDaysInactive"`
	BundleMinFrequency *int     `json:"bundleMinFrequency"`
	BundleMinSupport   *float64 `json:"bundleMinSupport"`
}

// MigrateRuleConfig upgrades a stored config payload to the current schema:
// missing or unparseable fields fall back to defaults and the version stamp
// is set to the current one. One-way and idempotent - migrating an already
// migrated payload is a no-op. A malformed payload degrades to the full
// defaults rather than surfacing an error.
func MigrateRuleConfig(payload []byte) models.RuleConfig {
	cfg := DefaultRuleConfig()

	var raw rawRuleConfig
	if len(payload) == 0 || json.Unmarshal(payload, &raw) != nil {
		return cfg
	}

	if raw.PromoteMinQuantity != nil {
		cfg.PromoteMinQuantity = *raw.PromoteMinQuantity
	}
	if raw.PromoteMinRevenue != nil {
		cfg.PromoteMinRevenue = *raw.PromoteMinRevenue
	}
	if raw.CutMaxQuantity != nil && *raw.CutMaxQuantity > 0 {
		cfg.CutMaxQuantity = *raw.CutMaxQuantity
	}
	if raw.CutMaxRevenue != nil && *raw.CutMaxRevenue > 0 {
		cfg.CutMaxRevenue = *raw.CutMaxRevenue
	}
	if raw.CutDaysInactive != nil && *raw.CutDaysInactive > 0 {
		cfg.CutDaysInactive = *raw.CutDaysInactive
	}
	if raw.BundleMinFrequency != nil && *raw.BundleMinFrequency > 0 {
		cfg.BundleMinFrequency = *raw.BundleMinFrequency
	}
	if raw.BundleMinSupport != nil && *raw.BundleMinSupport > 0 {
		cfg.BundleMinSupport = *raw.BundleMinSupport
	}

	cfg.Version = RuleConfigVersion
	return cfg
}

// NormalizeRuleConfig repairs a config that was scanned from the database:
// zeroed thresholds (all legal values are positive) fall back to defaults
// and the version is brought current. Same merge rules as MigrateRuleConfig.
func NormalizeRuleConfig(cfg models.RuleConfig) models.RuleConfig {
	def := DefaultRuleConfig()

	if cfg.PromoteMinQuantity <= 0 {
		cfg.PromoteMinQuantity = def.PromoteMinQuantity
	}
	if cfg.PromoteMinRevenue <= 0 {
		cfg.PromoteMinRevenue = def.PromoteMinRevenue
	}
	if cfg.CutMaxQuantity <= 0 {
		cfg.CutMaxQuantity = def.CutMaxQuantity
	}
	if cfg.CutMaxRevenue <= 0 {
		cfg.CutMaxRevenue = def.CutMaxRevenue
	}
	if cfg.CutDaysInactive <= 0 {
		cfg.CutDaysInactive = def.CutDaysInactive
	}
	if cfg.BundleMinFrequency <= 0 {
		cfg.BundleMinFrequency = def.BundleMinFrequency
	}
	if cfg.BundleMinSupport <= 0 {
		cfg.BundleMinSupport = def.BundleMinSupport
	}

	cfg.Version = RuleConfigVersion
	return cfg
}
