package predictionService

import (
	"footballTipsBot/models/external"
	"footballTipsBot/services/common"
)

// Selection is one priced outcome from the normalized odds set.
type Selection struct {
	Label string
	Odds  float64
}

// NormalizedOdds is the in-memory projection of one fixture's raw odds
// payload. It exists only within a single ingestion pass and is never
// persisted.
type NormalizedOdds struct {
	Selections []Selection
	Scorelines []Selection
}

// DefaultSelection is emitted when the provider quotes no prices at all for a
// fixture. The pipeline prefers one low-information tip over stalling a
// plan's daily drop while the provider catches up.
var DefaultSelection = Selection{Label: "Over 2.5", Odds: 1.80}

// CorrectScoreFallback stands in when the provider prices none of the low
// scorelines. Representative odds, hand-tuned against historical
// correct-score markets.
var CorrectScoreFallback = []Selection{
	{Label: "1-0", Odds: 6.50},
	{Label: "2-1", Odds: 8.00},
	{Label: "1-1", Odds: 6.00},
	{Label: "2-0", Odds: 9.00},
	{Label: "0-0", Odds: 9.50},
	{Label: "1-2", Odds: 9.00},
	{Label: "0-1", Odds: 8.00},
	{Label: "2-2", Odds: 12.00},
}

// NormalizeOdds converts the provider's flat odds document into the uniform
// selection set the classifier works on. Malformed or missing price fields
// are skipped, never defaulted and never an error.
func NormalizeOdds(raw external.Football_Odds, correctScore bool) NormalizedOdds {
	if correctScore {
		return NormalizedOdds{Scorelines: normalizeScorelines(raw)}
	}
	return NormalizedOdds{Selections: normalizeStandard(raw)}
}

func normalizeStandard(raw external.Football_Odds) []Selection {
	fields := []struct {
		label string
		value string
	}{
		{"Home Win", raw.OddHome},
		{"Away Win", raw.OddAway},
		{"Draw", raw.OddDraw},
		{"Over 1.5", raw.OddOver15},
		{"Over 2.5", raw.OddOver25},
		{"Under 2.5", raw.OddUnder25},
		{"BTTS", raw.OddBTTSYes},
	}

	var selections []Selection
	for _, f := range fields {
		if odds, ok := common.ParseDecimal(f.value); ok {
			selections = append(selections, Selection{Label: f.label, Odds: odds})
		}
	}

	if len(selections) == 0 {
		return []Selection{DefaultSelection}
	}
	return selections
}

func normalizeScorelines(raw external.Football_Odds) []Selection {
	fields := []struct {
		label string
		value string
	}{
		{"0-0", raw.OddScore00},
		{"0-1", raw.OddScore01},
		{"0-2", raw.OddScore02},
		{"0-3", raw.OddScore03},
		{"1-0", raw.OddScore10},
		{"1-1", raw.OddScore11},
		{"1-2", raw.OddScore12},
		{"1-3", raw.OddScore13},
		{"2-0", raw.OddScore20},
		{"2-1", raw.OddScore21},
		{"2-2", raw.OddScore22},
		{"2-3", raw.OddScore23},
		{"3-0", raw.OddScore30},
		{"3-1", raw.OddScore31},
		{"3-2", raw.OddScore32},
		{"3-3", raw.OddScore33},
	}

	var scorelines []Selection
	for _, f := range fields {
		if odds, ok := common.ParseDecimal(f.value); ok {
			scorelines = append(scorelines, Selection{Label: f.label, Odds: odds})
		}
	}

	if len(scorelines) == 0 {
		return CorrectScoreFallback
	}
	return scorelines
}
