package scheduler_jobs

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/services/extService"
	"footballTipsBot/services/settlementService"
)

// UpdateScores settles today's predictions against the live fixture feed.
// The recover guard keeps one bad feed payload from killing the cron runner.
func UpdateScores(db *gorm.DB, feed extService.FixtureFeed, log *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered in UpdateScores", zap.Any("panic", r))
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in UpdateScores: %v", r)
		}
	}()

	date := time.Now().UTC().Format("2006-01-02")
	_, err = settlementService.UpdateScores(db, feed, settlementService.NameMatcher{}, log, date)
	return err
}
