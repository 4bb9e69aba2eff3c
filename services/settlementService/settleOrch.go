package settlementService

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/models"
	"footballTipsBot/services/common"
	"footballTipsBot/services/extService"
	"footballTipsBot/services/metricsService"
	"footballTipsBot/services/resultService"
)

// UpdateScores reconciles the date's predictions against the feed's fixture
// data and applies status/score/result transitions. Partial success is the
// expected mode: an unmatched or not-yet-started prediction is skipped, a
// failed individual write is logged and the loop continues. Returns how many
// predictions were updated.
func UpdateScores(db *gorm.DB, feed extService.FixtureFeed, matcher FixtureMatcher, log *zap.Logger, date string) (int, error) {
	if strings.TrimSpace(date) == "" {
		return 0, fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrInvalidInput)
	}

	fixtures, err := feed.ListFixtures(date, date)
	if err != nil {
		// No feed data means nothing can be settled this run; the next run
		// picks the same predictions up again.
		log.Warn("fixture list unavailable, nothing to settle", zap.String("date", date), zap.Error(err))
		return 0, nil
	}

	var predictions []models.Prediction
	if err := db.Where("kickoff_time >= ? AND kickoff_time < ?", day, day.AddDate(0, 0, 1)).Find(&predictions).Error; err != nil {
		return 0, fmt.Errorf("loading predictions for %s: %w", date, err)
	}

	updated := 0
	for _, pred := range predictions {
		if pred.Result == models.ResultWin || pred.Result == models.ResultLoss {
			// Verdicts are immutable; rerunning the job must not touch them.
			continue
		}

		fx, ok := matcher.Match(pred.HomeTeam, pred.AwayTeam, fixtures)
		if !ok {
			continue
		}

		finished := extService.IsFinished(fx)
		live := extService.IsLive(fx)
		if !finished && !live {
			// Too early to settle.
			continue
		}
		if pred.Status == models.StatusFinished && !finished {
			// Status is monotonic; a feed hiccup never moves finished back to
			// live.
			continue
		}

		// Scores default to 0 for the verdict so a finished match with a
		// mangled score field still settles, but the score columns are only
		// written when both values parse cleanly.
		home, homeOK := common.ParseScore(fx.HomeTeamScore)
		away, awayOK := common.ParseScore(fx.AwayTeamScore)

		changes := map[string]interface{}{
			"updated_at": time.Now(),
		}
		if finished {
			changes["status"] = models.StatusFinished
			changes["result"] = resultService.DetermineResult(pred.PredictionType, home, away)
		} else {
			changes["status"] = models.StatusLive
			changes["result"] = models.ResultPending
		}
		if homeOK && awayOK {
			changes["home_score"] = home
			changes["away_score"] = away
		}

		if err := db.Model(&models.Prediction{}).Where("id = ?", pred.ID).Updates(changes).Error; err != nil {
			common.LogError(db, log, "settlement.update", err)
			continue
		}
		updated++
	}

	metricsService.PredictionsSettled.Add(float64(updated))
	log.Info("score update complete", zap.String("date", date), zap.Int("updated", updated))
	return updated, nil
}
