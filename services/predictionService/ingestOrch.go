package predictionService

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/models"
	"footballTipsBot/services/common"
	"footballTipsBot/services/extService"
	"footballTipsBot/services/metricsService"
)

// maxFixturesPerSync bounds external-call fan-out for one ingestion run.
const maxFixturesPerSync = 50

type SyncParams struct {
	Date                string
	Plan                models.PlanType
	ConfidenceThreshold int
	MinOdds             *float64
	MaxOdds             *float64
	Preview             bool
}

type SyncSummary struct {
	Written            int
	Filtered           int
	EffectiveThreshold int
	EffectiveMinOdds   *float64
	EffectiveMaxOdds   *float64

	// Candidates is populated in preview mode instead of Written.
	Candidates []models.Prediction
}

// SyncPredictions pulls the date's fixtures from the feed, classifies each
// one under the requested plan, and bulk-inserts the surviving records. With
// Preview set it returns the candidate list without touching the store.
//
// The rng is the confidence source; callers inject it so tests can seed it.
func SyncPredictions(db *gorm.DB, feed extService.FixtureFeed, notifier Notifier, log *zap.Logger, rng *rand.Rand, p SyncParams) (*SyncSummary, error) {
	if strings.TrimSpace(p.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	if !models.ValidPlanType(p.Plan) {
		return nil, fmt.Errorf("%w: unknown plan type %q", common.ErrInvalidInput, p.Plan)
	}
	if p.MinOdds != nil && p.MaxOdds != nil && *p.MinOdds >= *p.MaxOdds {
		return nil, fmt.Errorf("%w: minOdds must be below maxOdds", common.ErrInvalidInput)
	}

	threshold := common.ClampConfidence(p.ConfidenceThreshold)
	policy := policyFor(p.Plan)
	correctScore := p.Plan == models.PlanCorrectScore

	fixtures, err := feed.ListFixtures(p.Date, p.Date)
	if err != nil {
		// Feed trouble is "no data right now", not a failed sync.
		log.Warn("fixture list unavailable", zap.String("date", p.Date), zap.Error(err))
		fixtures = nil
	}
	if len(fixtures) > maxFixturesPerSync {
		fixtures = fixtures[:maxFixturesPerSync]
	}

	params := ClassifyParams{Plan: p.Plan, Threshold: threshold, MinOdds: p.MinOdds, MaxOdds: p.MaxOdds}

	var records []models.Prediction
	filtered := 0
	for _, fx := range fixtures {
		raw, oddsErr := feed.ListOdds(fx.MatchID)
		if oddsErr != nil {
			log.Debug("skipping fixture, odds fetch failed",
				zap.String("match_id", fx.MatchID), zap.Error(oddsErr))
			continue
		}

		recs, f := Classify(fx, NormalizeOdds(raw, correctScore), policy, params, rng)
		records = append(records, recs...)
		filtered += f
	}

	summary := &SyncSummary{
		Filtered:           filtered,
		EffectiveThreshold: threshold,
		EffectiveMinOdds:   p.MinOdds,
		EffectiveMaxOdds:   p.MaxOdds,
	}
	metricsService.PredictionsFiltered.WithLabelValues(string(p.Plan)).Add(float64(filtered))

	if p.Preview {
		summary.Candidates = records
		return summary, nil
	}

	if len(records) > 0 {
		// Records are the typed persisted schema, so the insert carries
		// exactly the allow-listed fields and nothing else.
		if err := db.Create(&records).Error; err != nil {
			return nil, fmt.Errorf("bulk insert failed: %w", err)
		}
		summary.Written = len(records)
		metricsService.PredictionsWritten.WithLabelValues(string(p.Plan)).Add(float64(len(records)))

		var plan models.Plan
		if err := db.Where("plan_type = ?", p.Plan).First(&plan).Error; err != nil {
			log.Warn("no plan row found, skipping drop notification",
				zap.String("plan", string(p.Plan)), zap.Error(err))
		} else if err := notifier.NotifyPredictionDropped(plan.ID, plan.Name); err != nil {
			common.LogError(db, log, "ingest.notify", err)
		}
	}

	log.Info("prediction sync complete",
		zap.String("date", p.Date),
		zap.String("plan", string(p.Plan)),
		zap.Int("written", summary.Written),
		zap.Int("filtered", summary.Filtered),
		zap.Bool("preview", p.Preview))

	return summary, nil
}
