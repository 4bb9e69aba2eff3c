package main

import (
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"footballTipsBot/models"
	"footballTipsBot/scheduler"
	"footballTipsBot/services"
	"footballTipsBot/services/apiService"
	"footballTipsBot/services/common"
	"footballTipsBot/services/extService"
	"footballTipsBot/services/predictionService"
	"footballTipsBot/services/settlementService"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.Prediction{}, &models.Plan{}, &models.ErrorLog{}, &models.Migration{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	err = services.SeedPlans(db)
	if err != nil {
		log.Fatalf("Error seeding plan catalog: %v", err)
	}
}

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	zlog, err := common.NewLogger("football-tips", env)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync()

	feed := extService.NewFootballAPI()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		feed = extService.NewCachedFeed(feed, rdb, zlog)
	}

	var notifier predictionService.Notifier = predictionService.NoopNotifier{}
	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		dg, err := discordgo.New("Bot " + token)
		if err != nil {
			log.Fatalf("Error creating Discord session: %v", err)
		}
		err = dg.Open()
		if err != nil {
			log.Fatalf("Error opening Discord session: %v", err)
		}
		defer dg.Close()
		notifier = predictionService.NewDiscordNotifier(dg, db)
	}

	scheduler.SetupCron(db, feed, zlog)

	adminToken := os.Getenv("ADMIN_API_TOKEN")
	if adminToken == "" {
		log.Fatalf("ADMIN_API_TOKEN not set in environment variables")
	}

	handler := &apiService.Handler{
		DB:       db,
		Feed:     feed,
		Notifier: notifier,
		Matcher:  settlementService.NameMatcher{},
		Log:      zlog,
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	zlog.Info("admin API listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, apiService.NewRouter(handler, adminToken)); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
