package models

import "gorm.io/gorm"

// Plan is one sellable subscription product. NotifyChannelID is the Discord
// channel that gets the "new tips dropped" announcement after an ingestion
// run writes records for this plan.
type Plan struct {
	gorm.Model
	ID              uint     `gorm:"primaryKey"`
	Name            string   `gorm:"size:64"`
	PlanType        PlanType `gorm:"size:32;uniqueIndex"`
	NotifyChannelID string   `gorm:"size:64"`
	Active          bool     `gorm:"default:true"`
}
