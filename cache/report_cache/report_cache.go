package report_cache

import (
	"sync"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
)

const TTL = 5 * time.Minute

// ── Menu engineering report cache ────────────────────────────────────────────
// Keyed per restaurant and window. Classification reads the whole window's
// stats; the analytics, recommendation and bundle endpoints all hit the same
// report, so one import-free 5 minute span costs a single aggregation query.

type reportKey struct {
	restaurantID string
	from         string // YYYY-MM-DD, resolved window bounds
	to           string
}

type reportEntry struct {
	report    models.MenuEngineeringReport
	pairs     []models.BundlePair
	fetchedAt time.Time
}

var (
	reportMu    sync.RWMutex
	reportCache = make(map[reportKey]*reportEntry)
)

func key(restaurantID string, from, to time.Time) reportKey {
	return reportKey{
		restaurantID: restaurantID,
		from:         from.Format("2006-01-02"),
		to:           to.Format("2006-01-02"),
	}
}

func GetReport(restaurantID string, from, to time.Time) (models.MenuEngineeringReport, []models.BundlePair, bool) {
	reportMu.RLock()
	defer reportMu.RUnlock()
	entry, ok := reportCache[key(restaurantID, from, to)]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.report, entry.pairs, true
	}
	return models.MenuEngineeringReport{}, nil, false
}

func SetReport(restaurantID string, from, to time.Time, report models.MenuEngineeringReport, pairs []models.BundlePair) {
	reportMu.Lock()
	defer reportMu.Unlock()
	reportCache[key(restaurantID, from, to)] = &reportEntry{
		report:    report,
		pairs:     pairs,
		fetchedAt: time.Now(),
	}
}

// ── Invalidate one tenant (call on CSV import or any menu mutation) ──────────

func Invalidate(restaurantID string) {
	reportMu.Lock()
	defer reportMu.Unlock()
	for k := range reportCache {
		if k.restaurantID == restaurantID {
			delete(reportCache, k)
		}
	}
}
