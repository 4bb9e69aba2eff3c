package predictionService

import (
	"math/rand"
	"time"

	"footballTipsBot/models"
	"footballTipsBot/models/external"
	"footballTipsBot/services/extService"
)

// ClassifyParams carries the external filter the admin configured for one
// sync run. Threshold arrives already clamped by the orchestrator.
type ClassifyParams struct {
	Plan      models.PlanType
	Threshold int
	MinOdds   *float64
	MaxOdds   *float64
}

// candidate is a selection with an assigned confidence, before the external
// threshold/window filter runs.
type candidate struct {
	label      string
	odds       float64
	confidence int
}

// selectionPolicy is the per-plan candidate rule. One policy value is picked
// per ingestion run and reused across every fixture in the batch. The second
// return value counts candidates the policy itself rejected (the daily-2-odds
// band), which the caller folds into the filtered total.
type selectionPolicy interface {
	candidates(odds NormalizedOdds, rng *rand.Rand) ([]candidate, int)
}

func policyFor(plan models.PlanType) selectionPolicy {
	switch plan {
	case models.PlanCorrectScore:
		return correctScorePolicy{}
	case models.PlanDaily2Odds:
		return daily2OddsPolicy{}
	default:
		// free, standard and profitMultiplier share the same selection rule;
		// they differ only in which subscribers can see the records.
		return defaultPolicy{}
	}
}

type correctScorePolicy struct{}

// Top three scorelines in the order the normalizer produced them. That order
// is the provider's, deliberately not re-sorted by price.
func (correctScorePolicy) candidates(odds NormalizedOdds, rng *rand.Rand) ([]candidate, int) {
	out := make([]candidate, 0, 3)
	for i, s := range odds.Scorelines {
		if i >= 3 {
			break
		}
		out = append(out, candidate{label: s.Label, odds: s.Odds, confidence: 75 + rng.Intn(20)})
	}
	return out, 0
}

// daily2OddsMin/Max is the product promise behind the daily-2-odds plan:
// every tip prices inside [1.8, 2.2]. A fixture with nothing in the band
// contributes zero records, and every selection outside it counts as
// filtered.
const (
	daily2OddsMin = 1.8
	daily2OddsMax = 2.2
)

type daily2OddsPolicy struct{}

func (daily2OddsPolicy) candidates(odds NormalizedOdds, rng *rand.Rand) ([]candidate, int) {
	var out []candidate
	bandFiltered := 0
	for _, s := range odds.Selections {
		if s.Odds < daily2OddsMin || s.Odds > daily2OddsMax {
			bandFiltered++
			continue
		}
		out = append(out, candidate{label: s.Label, odds: s.Odds, confidence: 70 + rng.Intn(30)})
	}
	return out, bandFiltered
}

type defaultPolicy struct{}

func (defaultPolicy) candidates(odds NormalizedOdds, rng *rand.Rand) ([]candidate, int) {
	var out []candidate
	for _, s := range odds.Selections {
		price := s.Odds
		if price <= 0 && len(odds.Selections) > 0 {
			// Unpriced selection slipped through; reuse the first selection's
			// price rather than dropping the tip.
			price = odds.Selections[0].Odds
		}
		out = append(out, candidate{label: s.Label, odds: price, confidence: 70 + rng.Intn(30)})
	}
	return out, 0
}

// Classify turns one fixture's normalized odds into zero or more prediction
// records. The returned count is how many candidates the filter rejected;
// that is a normal selection outcome reported for observability, not an
// error.
func Classify(fx external.Football_Fixture, odds NormalizedOdds, policy selectionPolicy, p ClassifyParams, rng *rand.Rand) ([]models.Prediction, int) {
	cands, filtered := policy.candidates(odds, rng)

	var records []models.Prediction
	for _, c := range cands {
		if c.confidence < p.Threshold {
			filtered++
			continue
		}
		if p.MinOdds != nil && c.odds < *p.MinOdds {
			filtered++
			continue
		}
		if p.MaxOdds != nil && c.odds > *p.MaxOdds {
			filtered++
			continue
		}
		records = append(records, buildPrediction(fx, p.Plan, c))
	}

	return records, filtered
}

func buildPrediction(fx external.Football_Fixture, plan models.PlanType, c candidate) models.Prediction {
	return models.Prediction{
		PlanType:       plan,
		HomeTeam:       fx.HomeTeamName,
		AwayTeam:       fx.AwayTeamName,
		League:         fx.LeagueName,
		PredictionType: c.label,
		Odds:           c.odds,
		Confidence:     c.confidence,
		KickoffTime:    parseKickoff(fx),
		Status:         extService.FixtureStatus(fx),
		MatchID:        fx.MatchID,
		LeagueID:       fx.LeagueID,
		HomeTeamID:     fx.HomeTeamID,
		AwayTeamID:     fx.AwayTeamID,
	}
}

// parseKickoff concatenates the feed's date and time fields. A fixture with
// no time component still gets a midnight kickoff so the settlement day query
// picks it up.
func parseKickoff(fx external.Football_Fixture) time.Time {
	if t, err := time.Parse("2006-01-02 15:04", fx.MatchDate+" "+fx.MatchTime); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", fx.MatchDate); err == nil {
		return t
	}
	return time.Time{}
}
