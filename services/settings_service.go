package services

import (
	"context"
	"errors"
	"log"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/menuengine"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/jackc/pgx/v5"
)

// LoadRuleConfig returns the restaurant's rule config, migrated to the
// current schema. The stored JSONB is read raw so legacy payloads (missing
// fields, pre-version stamps) migrate on every read. A missing row or an
// unreadable payload degrades to defaults; config load problems are never
// surfaced to the user.
func LoadRuleConfig(ctx context.Context, restaurantID string) models.RuleConfig {
	var payload []byte
	err := config.DashboardDB.QueryRow(ctx, `
		SELECT rule_config FROM restaurant_settings WHERE restaurant_id = $1
	`, restaurantID).Scan(&payload)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("[settings] WARN load rule config restaurant=%s err=%v", restaurantID, err)
		}
		return menuengine.DefaultRuleConfig()
	}
	return menuengine.MigrateRuleConfig(payload)
}
