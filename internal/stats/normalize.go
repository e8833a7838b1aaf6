package stats

import (
	"strconv"

	"github.com/dmorneau/sabrpage/internal/models"
)

// Stat category names as the upstream API reports them.
const (
	CategoryHitting  = "hitting"
	CategoryPitching = "pitching"
	CategoryFielding = "fielding"
)

// Normalize converts the sparse category payloads for one team or player
// into a dense StatLine. The primary category supplies every field; a
// missing primary category yields an all-zero line, not an error. When the
// primary is pitching and a fielding category is present, its errors and
// doublePlays counts are merged in — defensive efficiency needs them, FIP
// does not.
func Normalize(primary string, categories map[string]models.RawCategoryStats) models.StatLine {
	raw := categories[primary]

	line := models.StatLine{
		GamesPlayed:      number(raw["gamesPlayed"]),
		AtBats:           number(raw["atBats"]),
		PlateAppearances: number(raw["plateAppearances"]),
		Hits:             number(raw["hits"]),
		Doubles:          number(raw["doubles"]),
		Triples:          number(raw["triples"]),
		HomeRuns:         number(raw["homeRuns"]),
		Runs:             number(raw["runs"]),
		RBI:              number(raw["rbi"]),
		BaseOnBalls:      number(raw["baseOnBalls"]),
		HitByPitch:       number(raw["hitByPitch"]),
		SacFlies:         number(raw["sacFlies"]),
		StolenBases:      number(raw["stolenBases"]),
		StrikeOuts:       number(raw["strikeOuts"]),
		TotalBases:       number(raw["totalBases"]),
		InningsPitched:   number(raw["inningsPitched"]),
		EarnedRuns:       number(raw["earnedRuns"]),
		Wins:             number(raw["wins"]),
		Losses:           number(raw["losses"]),
		Saves:            number(raw["saves"]),
		Errors:           number(raw["errors"]),
		DoublePlays:      number(raw["doublePlays"]),
	}

	if primary == CategoryPitching {
		if fielding, ok := categories[CategoryFielding]; ok {
			line.Errors = number(fielding["errors"])
			line.DoublePlays = number(fielding["doublePlays"])
		}
	}

	return line
}

// number coerces an upstream stat value to float64. The API mixes JSON
// numbers with strings like "1443.2" or ".248"; anything unparseable
// (including absent fields) is 0.
func number(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
