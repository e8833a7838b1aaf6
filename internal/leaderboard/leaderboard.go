// Package leaderboard turns a player collection into ordered, filtered
// views. All state lives in the caller-supplied ViewConfig; ComputeView is
// pure and never mutates its input.
package leaderboard

import (
	"sort"

	"github.com/dmorneau/sabrpage/internal/models"
)

// LeagueAll disables the league filter.
const LeagueAll = "ALL"

// Qualification thresholds, half of the full-season reference rates
// (502 plate appearances, 162 innings).
const (
	QualifiedPA = 251
	QualifiedIP = 81
)

// ViewConfig selects and orders one leaderboard view. The rendering layer
// owns whatever persistence the current selection needs.
type ViewConfig struct {
	League        string
	Count         int
	QualifiedOnly bool
	MaxAge        int
	SortKey       string
	SortAscending bool
}

// ascendingByDefault lists the sort keys where lower is better. Everything
// else defaults to descending.
var ascendingByDefault = map[string]bool{
	"era":       true,
	"whip":      true,
	"fip":       true,
	"hrAllowed": true,
	"bbAllowed": true,
	"losses":    true,
}

// DefaultAscending reports the default direction for a sort key.
func DefaultAscending(key string) bool {
	return ascendingByDefault[key]
}

// Toggle applies a sort-key selection to an existing configuration:
// re-selecting the current key flips the direction, a new key resets it to
// that key's default.
func Toggle(cfg ViewConfig, key string) ViewConfig {
	if cfg.SortKey == key {
		cfg.SortAscending = !cfg.SortAscending
		return cfg
	}
	cfg.SortKey = key
	cfg.SortAscending = DefaultAscending(key)
	return cfg
}

// ComputeView filters, orders and truncates the player collection per the
// configuration. Ties keep the input order (stable sort). Count <= 0 means
// no length limit.
func ComputeView(players []models.Player, cfg ViewConfig) []models.Player {
	view := make([]models.Player, 0, len(players))
	for _, p := range players {
		if cfg.League != "" && cfg.League != LeagueAll && p.League != cfg.League {
			continue
		}
		if cfg.MaxAge > 0 && p.Age > cfg.MaxAge {
			continue
		}
		if cfg.QualifiedOnly && !Qualified(p) {
			continue
		}
		view = append(view, p)
	}

	sort.SliceStable(view, func(i, j int) bool {
		a := StatValue(view[i], cfg.SortKey)
		b := StatValue(view[j], cfg.SortKey)
		if cfg.SortAscending {
			return a < b
		}
		return a > b
	})

	if cfg.Count > 0 && len(view) > cfg.Count {
		view = view[:cfg.Count]
	}
	return view
}

// Qualified reports whether a player meets the playing-time threshold for
// rate-stat leaderboards: PA at or above the half-season batter reference,
// IP at or above the half-season pitcher reference.
func Qualified(p models.Player) bool {
	if p.Role == models.RolePitcher {
		return p.Stats.InningsPitched >= QualifiedIP
	}
	return p.Stats.PlateAppearances >= QualifiedPA
}

// StatValue extracts the sortable value for a key, covering both raw
// counting fields and derived metrics. Unknown keys sort as 0.
func StatValue(p models.Player, key string) float64 {
	switch key {
	case "hr":
		return p.Stats.HomeRuns
	case "hrAllowed":
		return p.Stats.HomeRuns
	case "hits":
		return p.Stats.Hits
	case "runs":
		return p.Stats.Runs
	case "rbi":
		return p.Stats.RBI
	case "sb":
		return p.Stats.StolenBases
	case "bb":
		return p.Stats.BaseOnBalls
	case "bbAllowed":
		return p.Stats.BaseOnBalls
	case "so":
		return p.Stats.StrikeOuts
	case "wins":
		return p.Stats.Wins
	case "losses":
		return p.Stats.Losses
	case "saves":
		return p.Stats.Saves
	case "ip":
		return p.Stats.InningsPitched
	case "pa":
		return p.Stats.PlateAppearances
	case "age":
		return float64(p.Age)
	default:
		return p.Derived[key]
	}
}
