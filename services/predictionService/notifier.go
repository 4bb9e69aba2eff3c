package predictionService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"footballTipsBot/models"
)

// Notifier announces a finished ingestion run to subscribers. Failures here
// never fail the ingestion; the orchestrator logs and moves on.
type Notifier interface {
	NotifyPredictionDropped(planID uint, planName string) error
}

// NoopNotifier is used when no bot token is configured (local dev, tests).
type NoopNotifier struct{}

func (NoopNotifier) NotifyPredictionDropped(planID uint, planName string) error {
	return nil
}

// DiscordNotifier posts the "tips dropped" embed into the plan's channel.
type DiscordNotifier struct {
	session *discordgo.Session
	db      *gorm.DB
}

func NewDiscordNotifier(s *discordgo.Session, db *gorm.DB) *DiscordNotifier {
	return &DiscordNotifier{session: s, db: db}
}

func (n *DiscordNotifier) NotifyPredictionDropped(planID uint, planName string) error {
	var plan models.Plan
	if err := n.db.First(&plan, "id = ?", planID).Error; err != nil {
		return err
	}
	if plan.NotifyChannelID == "" {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📢 New Tips Dropped",
		Description: fmt.Sprintf("Fresh predictions are live for the **%s** plan.", planName),
		Color:       0x3498db,
	}
	_, err := n.session.ChannelMessageSendComplex(plan.NotifyChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	return err
}
