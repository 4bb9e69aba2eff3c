package services

import (
	"time"

	"gorm.io/gorm"

	"footballTipsBot/models"
)

// SeedPlans creates the plan catalog on first boot. Recorded in the
// migrations table so renaming a plan in the admin screens later is not
// undone by a restart.
func SeedPlans(db *gorm.DB) error {
	var existing models.Migration
	result := db.Where("name = ?", "seed_plan_catalog").First(&existing)
	if result.Error == nil && existing.ID != 0 {
		return nil
	}

	plans := []models.Plan{
		{Name: "Free Tips", PlanType: models.PlanFree, Active: true},
		{Name: "Standard", PlanType: models.PlanStandard, Active: true},
		{Name: "Profit Multiplier", PlanType: models.PlanProfitMultiplier, Active: true},
		{Name: "Daily 2 Odds", PlanType: models.PlanDaily2Odds, Active: true},
		{Name: "Correct Score", PlanType: models.PlanCorrectScore, Active: true},
	}
	for i := range plans {
		p := plans[i]
		if err := db.FirstOrCreate(&p, models.Plan{PlanType: p.PlanType}).Error; err != nil {
			return err
		}
	}

	return db.Create(&models.Migration{Name: "seed_plan_catalog", ExecutedAt: time.Now()}).Error
}
