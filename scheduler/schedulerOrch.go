package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/scheduler/scheduler_jobs"
	"footballTipsBot/services/common"
	"footballTipsBot/services/extService"
)

func SetupCron(db *gorm.DB, feed extService.FixtureFeed, log *zap.Logger) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 */15 * * * *", func() {
		// Every 15 minutes: reconcile today's predictions with the feed
		err := scheduler_jobs.UpdateScores(db, feed, log)
		if err != nil {
			log.Error("update scores job failed", zap.Error(err))
		}
	})

	if err != nil {
		common.LogError(db, log, "cron", err)
	}

	cronService.Start()
}
