package common

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/models"
)

// Error taxonomy for the two orchestrators. Input and permission errors are
// rejected at the boundary and never retried; feed errors are handled where
// they happen and never carry these sentinels.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// ClampConfidence pins an ingestion confidence threshold into [50,100].
func ClampConfidence(threshold int) int {
	if threshold < 50 {
		return 50
	}
	if threshold > 100 {
		return 100
	}
	return threshold
}

// ParseDecimal reads a feed price field. The feed quotes everything as
// strings and omits markets it does not price, so a blank or malformed value
// is reported as absent, never as an error.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseScore reads a feed score field. Same contract as ParseDecimal.
func ParseScore(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

// LogError writes an operational error both to the structured log and to the
// error_logs table so it shows up in the admin screens.
func LogError(db *gorm.DB, log *zap.Logger, source string, err error) {
	if err == nil {
		return
	}
	log.Error("operational error", zap.String("source", source), zap.Error(err))
	if db != nil {
		errLog := models.ErrorLog{
			Source:  source,
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}
}

// FootballAPIWrapper performs an authenticated GET against the football data
// feed. The API key travels as a query parameter, which is how this provider
// does auth.
func FootballAPIWrapper(requestUrl string) (*http.Response, error) {
	apiKey, ok := os.LookupEnv("FOOTBALL_API_KEY")
	if !ok || apiKey == "" {
		return nil, fmt.Errorf("FOOTBALL_API_KEY not set in environment variables")
	}

	sep := "?"
	if strings.Contains(requestUrl, "?") {
		sep = "&"
	}

	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl+sep+"APIkey="+apiKey, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	return resp, nil
}
