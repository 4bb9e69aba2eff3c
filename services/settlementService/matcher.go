package settlementService

import (
	"strings"

	"footballTipsBot/models/external"
)

// FixtureMatcher links a stored prediction to one of the day's fixtures. It
// is an interface so an exact-ID matcher can replace the name heuristic
// without touching the settlement orchestrator, once the feed starts
// returning stable match IDs.
type FixtureMatcher interface {
	Match(homeTeam, awayTeam string, fixtures []external.Football_Fixture) (external.Football_Fixture, bool)
}

// NameMatcher matches by normalized team names, accepting containment in
// either direction per side. The feed assigns inconsistent numeric IDs
// across calls, so names are the only stable handle; the loose containment
// rule trades precision for recall ("Man United" vs "Manchester United").
// Known limitation: short generic names ("City") can false-positive. That is
// accepted, since tightening it would drop legitimate matches.
type NameMatcher struct{}

func (NameMatcher) Match(homeTeam, awayTeam string, fixtures []external.Football_Fixture) (external.Football_Fixture, bool) {
	predHome := normalizeName(homeTeam)
	predAway := normalizeName(awayTeam)

	for _, fx := range fixtures {
		fxHome := normalizeName(fx.HomeTeamName)
		fxAway := normalizeName(fx.AwayTeamName)

		if predHome == fxHome && predAway == fxAway {
			return fx, true
		}
		if sideMatches(predHome, fxHome) && sideMatches(predAway, fxAway) {
			return fx, true
		}
	}

	return external.Football_Fixture{}, false
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func sideMatches(pred, fixture string) bool {
	if pred == "" || fixture == "" {
		return false
	}
	return pred == fixture || strings.Contains(fixture, pred) || strings.Contains(pred, fixture)
}
