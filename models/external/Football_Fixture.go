package external

// Football_Fixture is one entry from the feed's fixtures endpoint. The feed
// returns a flat field-keyed document; every value comes back as a string,
// scores included.
type Football_Fixture struct {
	MatchID            string `json:"match_id"`
	CountryName        string `json:"country_name"`
	LeagueID           string `json:"league_id"`
	LeagueName         string `json:"league_name"`
	MatchDate          string `json:"match_date"`
	MatchTime          string `json:"match_time"`
	MatchStatus        string `json:"match_status"`
	MatchLive          string `json:"match_live"`
	HomeTeamID         string `json:"match_hometeam_id"`
	HomeTeamName       string `json:"match_hometeam_name"`
	HomeTeamScore      string `json:"match_hometeam_score"`
	AwayTeamID         string `json:"match_awayteam_id"`
	AwayTeamName       string `json:"match_awayteam_name"`
	AwayTeamScore      string `json:"match_awayteam_score"`
	HomeTeamHalftime   string `json:"match_hometeam_halftime_score"`
	AwayTeamHalftime   string `json:"match_awayteam_halftime_score"`
	Stadium            string `json:"match_stadium"`
	Referee            string `json:"match_referee"`
}
