package extService

import (
	"footballTipsBot/models"
	"footballTipsBot/models/external"
	"footballTipsBot/services/common"
)

// Closed sets of provider status codes. Anything outside both sets means the
// match has not started (or the provider is mid-update), so settlement leaves
// the prediction alone.
var (
	finishedStatuses = []string{"FT", "AET", "PEN", "Finished", "FT_PEN"}
	liveStatuses     = []string{"LIVE", "HT", "1H", "2H"}
)

func IsFinished(fx external.Football_Fixture) bool {
	return common.Contains(finishedStatuses, fx.MatchStatus)
}

func IsLive(fx external.Football_Fixture) bool {
	return common.Contains(liveStatuses, fx.MatchStatus) || fx.MatchLive == "1"
}

// FixtureStatus maps the provider's match state onto the prediction status
// enum.
func FixtureStatus(fx external.Football_Fixture) models.MatchStatus {
	if IsFinished(fx) {
		return models.StatusFinished
	}
	if IsLive(fx) {
		return models.StatusLive
	}
	return models.StatusNotStarted
}
