package menuengine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleConfig(t *testing.T) {
	cfg := DefaultRuleConfig()

	assert.Equal(t, RuleConfigVersion, cfg.Version)
	assert.Equal(t, 20.0, cfg.CutMaxQuantity)
	assert.Equal(t, 30, cfg.CutDaysInactive)
	assert.Equal(t, 3, cfg.BundleMinFrequency)
	assert.Equal(t, 0.5, cfg.BundleMinSupport)
	assert.Equal(t, 100, cfg.PromoteMinQuantity)
	assert.Equal(t, 100, cfg.PromoteMinRevenue)
	assert.Equal(t, 20.0, cfg.CutMaxRevenue)
}

func TestMigrateRuleConfigLegacyPayload(t *testing.T) {
	// a v1 payload saved before bundle thresholds existed
	legacy := []byte(`{"promoteMinQuantity":50,"cutMaxQuantity":15,"cutDaysInactive":60}`)

	cfg := MigrateRuleConfig(legacy)

	assert.Equal(t, RuleConfigVersion, cfg.Version)
	assert.Equal(t, 50, cfg.PromoteMinQuantity, "stored values survive")
	assert.Equal(t, 15.0, cfg.CutMaxQuantity)
	assert.Equal(t, 60, cfg.CutDaysInactive)
	assert.Equal(t, 3, cfg.BundleMinFrequency, "missing fields pick up defaults")
	assert.Equal(t, 0.5, cfg.BundleMinSupport)
}

func TestMigrateRuleConfigIdempotent(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte(`{}`),
		[]byte(`{"cutMaxQuantity":35,"bundleMinFrequency":7}`),
		[]byte(`not json at all`),
	}

	for _, payload := range payloads {
		once := MigrateRuleConfig(payload)

		serialized, err := json.Marshal(once)
		require.NoError(t, err)
		twice := MigrateRuleConfig(serialized)

		assert.Equal(t, once, twice, "migrate(migrate(x)) must equal migrate(x)")
	}
}

func TestMigrateRuleConfigMalformed(t *testing.T) {
	cfg := MigrateRuleConfig([]byte(`{"cutMaxQuantity":"lots"}`))
	assert.Equal(t, DefaultRuleConfig(), cfg, "malformed payloads recover to full defaults")

	cfg = MigrateRuleConfig(nil)
	assert.Equal(t, DefaultRuleConfig(), cfg)
}

func TestNormalizeRuleConfig(t *testing.T) {
	cfg := DefaultRuleConfig()
	cfg.Version = 1
	cfg.BundleMinSupport = 0
	cfg.CutDaysInactive = -4

	fixed := NormalizeRuleConfig(cfg)

	assert.Equal(t, RuleConfigVersion, fixed.Version)
	assert.Equal(t, 0.5, fixed.BundleMinSupport)
	assert.Equal(t, 30, fixed.CutDaysInactive)
	assert.Equal(t, fixed, NormalizeRuleConfig(fixed), "normalize is idempotent")
}
