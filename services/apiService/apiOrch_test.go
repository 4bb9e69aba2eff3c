package apiService

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"footballTipsBot/models"
	"footballTipsBot/models/external"
	"footballTipsBot/services/predictionService"
	"footballTipsBot/services/settlementService"
)

const testToken = "test-admin-token"

type fakeFeed struct {
	fixtures []external.Football_Fixture
	odds     map[string]external.Football_Odds
}

func (f *fakeFeed) ListFixtures(fromDate, toDate string) ([]external.Football_Fixture, error) {
	return f.fixtures, nil
}

func (f *fakeFeed) ListOdds(matchID string) (external.Football_Odds, error) {
	return f.odds[matchID], nil
}

func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Prediction{}, &models.Plan{}, &models.ErrorLog{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}

	feed := &fakeFeed{
		fixtures: []external.Football_Fixture{{
			MatchID:      "1001",
			LeagueName:   "Premier League",
			HomeTeamName: "Arsenal",
			AwayTeamName: "Chelsea",
			MatchDate:    "2026-03-07",
			MatchTime:    "17:30",
		}},
		odds: map[string]external.Football_Odds{
			"1001": {OddHome: "2.10", OddDraw: "3.40", OddAway: "3.10"},
		},
	}

	h := &Handler{
		DB:       db,
		Feed:     feed,
		Notifier: predictionService.NoopNotifier{},
		Matcher:  settlementService.NameMatcher{},
		Log:      zap.NewNop(),
		Rng:      rand.New(rand.NewSource(1)),
	}
	return NewRouter(h, testToken), db
}

func adminPost(router http.Handler, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminEndpointsRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := adminPost(router, "/admin/predictions/sync", "", `{"date":"2026-03-07","planType":"standard"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("missing token: expected 403, got %d", rec.Code)
	}

	rec = adminPost(router, "/admin/predictions/update-scores", "wrong-token", `{"date":"2026-03-07"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong token: expected 403, got %d", rec.Code)
	}
}

func TestSyncEndpointRejectsInvalidOddsWindow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := adminPost(router, "/admin/predictions/sync", testToken,
		`{"date":"2026-03-07","planType":"standard","confidenceThreshold":70,"minOdds":3.0,"maxOdds":2.0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for min >= max, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSyncEndpointPreviewReturnsCandidatesWithoutWriting(t *testing.T) {
	router, db := newTestRouter(t)

	rec := adminPost(router, "/admin/predictions/sync", testToken,
		`{"date":"2026-03-07","planType":"standard","confidenceThreshold":50,"preview":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Written    int                 `json:"written"`
		Candidates []models.Prediction `json:"candidates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Candidates) == 0 {
		t.Error("preview response should carry the candidate list")
	}
	if resp.Written != 0 {
		t.Errorf("preview must not write, got written=%d", resp.Written)
	}

	var count int64
	db.Model(&models.Prediction{}).Count(&count)
	if count != 0 {
		t.Errorf("preview mutated the store: %d records", count)
	}
}

func TestUpdateScoresEndpointRejectsMissingDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := adminPost(router, "/admin/predictions/update-scores", testToken, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing date, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
