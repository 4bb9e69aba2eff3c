package external

// Football_Odds is the feed's pre-match odds document for one fixture.
// Flat and field-keyed like the fixtures payload; any price the provider
// does not quote simply comes back empty, so everything is a string and
// parsing happens downstream.
type Football_Odds struct {
	MatchID string `json:"match_id"`

	// 1X2 and totals market
	OddHome    string `json:"odd_1"`
	OddDraw    string `json:"odd_x"`
	OddAway    string `json:"odd_2"`
	OddOver15  string `json:"o+1.5"`
	OddOver25  string `json:"o+2.5"`
	OddUnder25 string `json:"u+2.5"`
	OddBTTSYes string `json:"bts_yes"`

	// Correct score market, low scorelines only
	OddScore00 string `json:"cs_0_0"`
	OddScore01 string `json:"cs_0_1"`
	OddScore02 string `json:"cs_0_2"`
	OddScore03 string `json:"cs_0_3"`
	OddScore10 string `json:"cs_1_0"`
	OddScore11 string `json:"cs_1_1"`
	OddScore12 string `json:"cs_1_2"`
	OddScore13 string `json:"cs_1_3"`
	OddScore20 string `json:"cs_2_0"`
	OddScore21 string `json:"cs_2_1"`
	OddScore22 string `json:"cs_2_2"`
	OddScore23 string `json:"cs_2_3"`
	OddScore30 string `json:"cs_3_0"`
	OddScore31 string `json:"cs_3_1"`
	OddScore32 string `json:"cs_3_2"`
	OddScore33 string `json:"cs_3_3"`
}
