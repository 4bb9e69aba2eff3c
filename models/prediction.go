package models

import (
	"gorm.io/gorm"
	"time"
)

type PlanType string

const (
	PlanFree             PlanType = "free"
	PlanStandard         PlanType = "standard"
	PlanProfitMultiplier PlanType = "profitMultiplier"
	PlanDaily2Odds       PlanType = "daily2Odds"
	PlanCorrectScore     PlanType = "correctScore"
)

func ValidPlanType(p PlanType) bool {
	switch p {
	case PlanFree, PlanStandard, PlanProfitMultiplier, PlanDaily2Odds, PlanCorrectScore:
		return true
	}
	return false
}

type MatchStatus string

const (
	StatusNotStarted MatchStatus = "notStarted"
	StatusLive       MatchStatus = "live"
	StatusFinished   MatchStatus = "finished"
)

type PredictionResult string

// Empty string means no verdict has been attempted yet. Once a prediction is
// win or loss it is never rewritten.
const (
	ResultPending PredictionResult = "pending"
	ResultWin     PredictionResult = "win"
	ResultLoss    PredictionResult = "loss"
)

// Prediction is the persisted schema for one sellable tip. The feed
// correlation IDs (MatchID, LeagueID, ...) are kept for reference only;
// settlement matches by team name because the feed does not assign stable
// numeric IDs across calls.
type Prediction struct {
	gorm.Model
	ID             uint             `gorm:"primaryKey"`
	PlanType       PlanType         `gorm:"size:32;index"`
	HomeTeam       string           `gorm:"size:128"`
	AwayTeam       string           `gorm:"size:128"`
	League         string           `gorm:"size:128"`
	PredictionType string           `gorm:"size:64"`
	Odds           float64
	Confidence     int
	KickoffTime    time.Time        `gorm:"index"`
	Status         MatchStatus      `gorm:"size:16"`
	Result         PredictionResult `gorm:"size:16"`
	HomeScore      *int
	AwayScore      *int
	AdminNotes     string
	MatchID        string `gorm:"size:64;index"`
	LeagueID       string `gorm:"size:64"`
	HomeTeamID     string `gorm:"size:64"`
	AwayTeamID     string `gorm:"size:64"`
}
