package resultService

import (
	"strconv"
	"strings"

	"footballTipsBot/models"
)

type selectionKind int

const (
	kindUnknown selectionKind = iota
	kindHomeWin
	kindAwayWin
	kindDraw
	kindOver
	kindUnder
	kindBTTSYes
	kindBTTSNo
	kindDoubleChance1X
	kindDoubleChanceX2
	kindDoubleChance12
	kindCorrectScore
)

// selection is the parsed form of a prediction label. kindUnknown is a real
// member of the taxonomy, not an error state; it settles as a loss.
type selection struct {
	kind selectionKind
	line float64
	home int
	away int
}

var goalLines = []float64{0.5, 1.5, 2.5, 3.5}

func parseSelection(label string) selection {
	l := strings.ToLower(strings.TrimSpace(label))
	l = strings.Join(strings.Fields(l), " ")

	switch l {
	case "home win", "home", "1":
		return selection{kind: kindHomeWin}
	case "away win", "away", "2":
		return selection{kind: kindAwayWin}
	case "draw", "x":
		return selection{kind: kindDraw}
	case "btts", "btts yes", "gg", "both teams to score":
		return selection{kind: kindBTTSYes}
	case "btts no", "btts-no", "ng":
		return selection{kind: kindBTTSNo}
	case "1x", "double chance 1x":
		return selection{kind: kindDoubleChance1X}
	case "x2", "double chance x2":
		return selection{kind: kindDoubleChanceX2}
	case "12", "double chance 12":
		return selection{kind: kindDoubleChance12}
	}

	if rest, ok := strings.CutPrefix(l, "over "); ok {
		if line, err := strconv.ParseFloat(rest, 64); err == nil && knownLine(line) {
			return selection{kind: kindOver, line: line}
		}
	}
	if rest, ok := strings.CutPrefix(l, "under "); ok {
		if line, err := strconv.ParseFloat(rest, 64); err == nil && knownLine(line) {
			return selection{kind: kindUnder, line: line}
		}
	}

	// Anything left is tried as a correct-score string ("2-1").
	if parts := strings.Split(l, "-"); len(parts) == 2 {
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		a, errA := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errA == nil && h >= 0 && a >= 0 {
			return selection{kind: kindCorrectScore, home: h, away: a}
		}
	}

	return selection{kind: kindUnknown}
}

func knownLine(line float64) bool {
	for _, l := range goalLines {
		if line == l {
			return true
		}
	}
	return false
}

// DetermineResult maps a prediction label and a final score to a verdict. It
// is total over every label that has ever been stored: an unrecognized label
// settles as a loss instead of raising, so a settlement batch always
// terminates with a determinate verdict. Callers rely on this never erroring;
// do not turn the catch-all into a failure.
func DetermineResult(label string, homeScore, awayScore int) models.PredictionResult {
	sel := parseSelection(label)
	total := homeScore + awayScore

	var win bool
	switch sel.kind {
	case kindHomeWin:
		win = homeScore > awayScore
	case kindAwayWin:
		win = awayScore > homeScore
	case kindDraw:
		win = homeScore == awayScore
	case kindOver:
		win = float64(total) > sel.line
	case kindUnder:
		win = float64(total) < sel.line
	case kindBTTSYes:
		win = homeScore > 0 && awayScore > 0
	case kindBTTSNo:
		win = homeScore == 0 || awayScore == 0
	case kindDoubleChance1X:
		win = homeScore >= awayScore
	case kindDoubleChanceX2:
		win = awayScore >= homeScore
	case kindDoubleChance12:
		win = homeScore != awayScore
	case kindCorrectScore:
		win = homeScore == sel.home && awayScore == sel.away
	case kindUnknown:
		win = false
	}

	if win {
		return models.ResultWin
	}
	return models.ResultLoss
}
