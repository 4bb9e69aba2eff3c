package resultService

import (
	"testing"

	"footballTipsBot/models"
)

func TestDetermineResult(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		homeScore int
		awayScore int
		expected  models.PredictionResult
		scenario  string
	}{
		// ===== 1X2 =====
		{
			name:      "Home win label with home victory",
			label:     "Home Win",
			homeScore: 3, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Home wins 3-1, home win tip lands",
		},
		{
			name:      "Home win label with draw",
			label:     "Home Win",
			homeScore: 1, awayScore: 1,
			expected: models.ResultLoss,
			scenario: "Draw settles a home win tip as loss",
		},
		{
			name:      "Numeric alias for home win",
			label:     "1",
			homeScore: 2, awayScore: 0,
			expected: models.ResultWin,
			scenario: "Label '1' is the 1X2 home alias",
		},
		{
			name:      "Away win label with away victory",
			label:     "Away Win",
			homeScore: 0, awayScore: 2,
			expected: models.ResultWin,
			scenario: "Away wins 0-2",
		},
		{
			name:      "Alias 2 with home victory",
			label:     "2",
			homeScore: 2, awayScore: 1,
			expected: models.ResultLoss,
			scenario: "Away alias loses when home wins",
		},
		{
			name:      "Draw label with draw",
			label:     "Draw",
			homeScore: 0, awayScore: 0,
			expected: models.ResultWin,
			scenario: "0-0 settles a draw tip as win",
		},
		{
			name:      "Alias x with draw",
			label:     "X",
			homeScore: 2, awayScore: 2,
			expected: models.ResultWin,
			scenario: "Case-insensitive draw alias",
		},

		// ===== Totals =====
		{
			name:      "Over 2.5 short of the line",
			label:     "Over 2.5",
			homeScore: 1, awayScore: 1,
			expected: models.ResultLoss,
			scenario: "Two goals is under the 2.5 line",
		},
		{
			name:      "Over 2.5 clears the line",
			label:     "Over 2.5",
			homeScore: 2, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Three goals clears 2.5",
		},
		{
			name:      "Over 0.5 with any goal",
			label:     "Over 0.5",
			homeScore: 1, awayScore: 0,
			expected: models.ResultWin,
			scenario: "One goal clears 0.5",
		},
		{
			name:      "Under 2.5 with two goals",
			label:     "Under 2.5",
			homeScore: 2, awayScore: 0,
			expected: models.ResultWin,
			scenario: "Two goals stays under 2.5",
		},
		{
			name:      "Under 3.5 with four goals",
			label:     "Under 3.5",
			homeScore: 2, awayScore: 2,
			expected: models.ResultLoss,
			scenario: "Four goals breaks under 3.5",
		},

		// ===== BTTS =====
		{
			name:      "BTTS with both scoring",
			label:     "BTTS",
			homeScore: 1, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Both teams scored",
		},
		{
			name:      "GG alias with clean sheet",
			label:     "gg",
			homeScore: 3, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Away kept off the scoresheet",
		},
		{
			name:      "BTTS No with clean sheet",
			label:     "BTTS No",
			homeScore: 2, awayScore: 0,
			expected: models.ResultWin,
			scenario: "One side failing to score wins BTTS-No",
		},
		{
			name:      "BTTS No with both scoring",
			label:     "btts-no",
			homeScore: 1, awayScore: 2,
			expected: models.ResultLoss,
			scenario: "Both scored, BTTS-No loses",
		},

		// ===== Double chance =====
		{
			name:      "1X with draw",
			label:     "1X",
			homeScore: 1, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Draw covers home-or-draw",
		},
		{
			name:      "X2 with home win",
			label:     "X2",
			homeScore: 2, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Home win breaks draw-or-away",
		},
		{
			name:      "12 with draw",
			label:     "12",
			homeScore: 0, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Draw is the only loser for 12",
		},
		{
			name:      "12 with away win",
			label:     "12",
			homeScore: 0, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Any decisive result covers 12",
		},

		// ===== Correct score =====
		{
			name:      "Exact scoreline match",
			label:     "2-1",
			homeScore: 2, awayScore: 1,
			expected: models.ResultWin,
			scenario: "Score string matches the final exactly",
		},
		{
			name:      "Reversed scoreline",
			label:     "2-1",
			homeScore: 1, awayScore: 2,
			expected: models.ResultLoss,
			scenario: "2-1 tip does not cover 1-2",
		},
		{
			name:      "Scoreline off by one",
			label:     "0-0",
			homeScore: 0, awayScore: 1,
			expected: models.ResultLoss,
			scenario: "Near miss is still a loss",
		},

		// ===== Catch-all =====
		{
			name:      "Unrecognized label",
			label:     "nonsense-label",
			homeScore: 5, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Unknown labels settle as loss, never error",
		},
		{
			name:      "Empty label",
			label:     "",
			homeScore: 1, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Blank label falls into the catch-all",
		},
		{
			name:      "Unsupported goal line",
			label:     "Over 4.5",
			homeScore: 9, awayScore: 0,
			expected: models.ResultLoss,
			scenario: "Lines outside the taxonomy are unknown labels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineResult(tt.label, tt.homeScore, tt.awayScore)
			if got != tt.expected {
				t.Errorf("%s: DetermineResult(%q, %d, %d) = %v, want %v",
					tt.scenario, tt.label, tt.homeScore, tt.awayScore, got, tt.expected)
			}
		})
	}
}
