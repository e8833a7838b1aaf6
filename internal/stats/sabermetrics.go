package stats

import (
	"math"

	"github.com/dmorneau/sabrpage/internal/models"
)

// Every function here is a closed-form formula over a normalized StatLine.
// Zero-denominator cases return 0, never NaN or Inf; downstream rendering
// and sorting rely on that sentinel.

const (
	// FIPConstant is the fixed league-average constant added for the
	// player-leaderboard FIP variant.
	FIPConstant = 3.10
	// replacementFIP anchors FIP-above-replacement.
	replacementFIP = 6.00
)

// BattingAverage is H / AB.
func BattingAverage(s models.StatLine) float64 {
	if s.AtBats == 0 {
		return 0
	}
	return s.Hits / s.AtBats
}

// Slugging is total bases per at-bat.
func Slugging(s models.StatLine) float64 {
	if s.AtBats == 0 {
		return 0
	}
	return s.TotalBases / s.AtBats
}

// IsolatedPower is SLG minus AVG.
func IsolatedPower(s models.StatLine) float64 {
	if s.AtBats == 0 {
		return 0
	}
	return Slugging(s) - BattingAverage(s)
}

// OnBasePercentage is (H + BB + HBP) / (AB + BB + HBP + SF).
func OnBasePercentage(s models.StatLine) float64 {
	denom := s.AtBats + s.BaseOnBalls + s.HitByPitch + s.SacFlies
	if denom == 0 {
		return 0
	}
	return (s.Hits + s.BaseOnBalls + s.HitByPitch) / denom
}

// FIP is the no-league-constant variant of fielding independent pitching:
// (13·HR + 3·(BB+HBP) − 2·K) / IP.
func FIP(s models.StatLine) float64 {
	if s.InningsPitched == 0 {
		return 0
	}
	return (13*s.HomeRuns + 3*(s.BaseOnBalls+s.HitByPitch) - 2*s.StrikeOuts) / s.InningsPitched
}

// FIPScaled adds the fixed league-average constant so the value reads on
// an ERA-like scale. The IP=0 sentinel stays 0, not the bare constant.
func FIPScaled(s models.StatLine) float64 {
	if s.InningsPitched == 0 {
		return 0
	}
	return FIP(s) + FIPConstant
}

// DefensiveEfficiency is the fraction of balls in play converted to outs:
// 1 − (H + E − HR) / (IP·3 + H + E − DP − HR − K). A non-positive
// denominator would make the ratio degenerate, so it collapses to 0.
func DefensiveEfficiency(s models.StatLine) float64 {
	if s.InningsPitched == 0 {
		return 0
	}
	denom := s.InningsPitched*3 + s.Hits + s.Errors - s.DoublePlays - s.HomeRuns - s.StrikeOuts
	if denom <= 0 {
		return 0
	}
	return 1 - (s.Hits+s.Errors-s.HomeRuns)/denom
}

// PythagoreanVariance is actual wins minus the win total predicted from
// run differential: expected = RS² / (RS² + RA²) × games.
func PythagoreanVariance(wins, gamesPlayed, runsScored, runsAllowed float64) float64 {
	if gamesPlayed == 0 {
		return 0
	}
	rs2 := runsScored * runsScored
	ra2 := runsAllowed * runsAllowed
	if rs2+ra2 == 0 {
		return 0
	}
	expected := rs2 / (rs2 + ra2) * gamesPlayed
	return wins - expected
}

// RunsCreated is the modern OBP × TB form.
func RunsCreated(s models.StatLine) float64 {
	return OnBasePercentage(s) * s.TotalBases
}

// RunsCreatedBasic is the classical Bill James form (H+BB)·TB / (AB+BB).
// It deliberately stays a separate metric from RunsCreated.
func RunsCreatedBasic(s models.StatLine) float64 {
	denom := s.AtBats + s.BaseOnBalls
	if denom == 0 {
		return 0
	}
	return (s.Hits + s.BaseOnBalls) * s.TotalBases / denom
}

// FIPAboveReplacement is (6.00 − fip) × IP / 9, rounded to the nearest
// integer. Positive means above replacement level. The caller picks which
// FIP variant to feed in.
func FIPAboveReplacement(fip, inningsPitched float64) float64 {
	return math.Round((replacementFIP - fip) * inningsPitched / 9)
}

// EarnedRunAverage is 9·ER / IP.
func EarnedRunAverage(s models.StatLine) float64 {
	if s.InningsPitched == 0 {
		return 0
	}
	return 9 * s.EarnedRuns / s.InningsPitched
}

// WHIP is walks plus hits per inning pitched.
func WHIP(s models.StatLine) float64 {
	if s.InningsPitched == 0 {
		return 0
	}
	return (s.BaseOnBalls + s.Hits) / s.InningsPitched
}
