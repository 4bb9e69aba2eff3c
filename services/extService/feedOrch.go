package extService

import (
	"encoding/json"
	"fmt"
	"os"

	"footballTipsBot/models/external"
	"footballTipsBot/services/common"
)

// FixtureFeed is the read-only view of the external sports-data provider.
// Both calls are best-effort from the pipeline's point of view: callers treat
// an error as "no data right now" and move on, they never retry here.
type FixtureFeed interface {
	ListFixtures(fromDate, toDate string) ([]external.Football_Fixture, error)
	ListOdds(matchID string) (external.Football_Odds, error)
}

type footballAPI struct {
	baseUrl string
}

func NewFootballAPI() FixtureFeed {
	base := os.Getenv("FOOTBALL_API_URL")
	if base == "" {
		base = "https://apiv3.apifootball.com/"
	}
	return &footballAPI{baseUrl: base}
}

func (f *footballAPI) ListFixtures(fromDate, toDate string) ([]external.Football_Fixture, error) {
	requestUrl := fmt.Sprintf("%s?action=get_events&from=%s&to=%s", f.baseUrl, fromDate, toDate)

	resp, err := common.FootballAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var fixtures []external.Football_Fixture
	err = json.NewDecoder(resp.Body).Decode(&fixtures)
	if err != nil {
		return nil, fmt.Errorf("error parsing fixtures response: %v", err)
	}

	return fixtures, nil
}

func (f *footballAPI) ListOdds(matchID string) (external.Football_Odds, error) {
	requestUrl := fmt.Sprintf("%s?action=get_odds&match_id=%s", f.baseUrl, matchID)

	resp, err := common.FootballAPIWrapper(requestUrl)
	if err != nil {
		return external.Football_Odds{}, err
	}
	defer resp.Body.Close()

	var payload []external.Football_Odds
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return external.Football_Odds{}, fmt.Errorf("error parsing odds response: %v", err)
	}

	// The provider wraps a single match's odds in an array. An empty array is
	// a valid answer (no prices yet), not an error; the normalizer has its own
	// fallback for that.
	if len(payload) == 0 {
		return external.Football_Odds{}, nil
	}
	return payload[0], nil
}
