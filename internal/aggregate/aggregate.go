// Package aggregate joins identity, standings and normalized stats into
// read-only Team and Player entities. Derived metric maps use these keys:
//
//	avg, obp, slg, iso, rc, rcBasic          (batting)
//	era, whip, fip, fipar, der               (pitching)
//	pythag                                   (teams only)
package aggregate

import (
	"errors"
	"log/slog"

	"github.com/dmorneau/sabrpage/internal/models"
	"github.com/dmorneau/sabrpage/internal/stats"
)

// ErrNoQualifyingTeams is the one hard stop the pipeline recognizes: no
// team survived the standings join, so there is nothing worth publishing.
// The caller decides whether to retry against a prior season.
var ErrNoQualifyingTeams = errors.New("no teams with both standings and league metadata")

// BuildTeams produces one entity per team that has both a standings entry
// and league metadata. Teams missing either (all-star squads and other
// exhibition entries come back from the same endpoint) are skipped, not
// errored.
func BuildTeams(apiTeams []models.APITeam, standings map[int]models.TeamRecord, teamStats map[int]map[string]models.RawCategoryStats) ([]models.Team, error) {
	var teams []models.Team

	for _, at := range apiTeams {
		record, ok := standings[at.ID]
		if !ok || at.League.Name == "" {
			continue
		}

		hitting := stats.Normalize(stats.CategoryHitting, teamStats[at.ID])
		pitching := stats.Normalize(stats.CategoryPitching, teamStats[at.ID])

		team := models.Team{
			ID:              at.ID,
			Name:            at.Name,
			Abbreviation:    at.Abbreviation,
			League:          at.League.Name,
			Division:        at.Division.Name,
			Wins:            record.Wins,
			Losses:          record.Losses,
			GamesPlayed:     record.GamesPlayed,
			GamesBack:       record.GamesBack,
			DivisionRank:    record.DivisionRank,
			WildCardRank:    record.WildCardRank,
			ClinchIndicator: record.ClinchIndicator,
			RunsScored:      record.RunsScored,
			RunsAllowed:     record.RunsAllowed,
			Hitting:         hitting,
			Pitching:        pitching,
		}
		team.Derived = teamMetrics(team)
		teams = append(teams, team)
	}

	if len(teams) == 0 {
		return nil, ErrNoQualifyingTeams
	}

	slog.Info("Aggregated teams", "kept", len(teams), "fetched", len(apiTeams))
	return teams, nil
}

func teamMetrics(t models.Team) map[string]float64 {
	fip := stats.FIP(t.Pitching)
	return map[string]float64{
		"avg":     stats.BattingAverage(t.Hitting),
		"obp":     stats.OnBasePercentage(t.Hitting),
		"slg":     stats.Slugging(t.Hitting),
		"iso":     stats.IsolatedPower(t.Hitting),
		"rc":      stats.RunsCreated(t.Hitting),
		"rcBasic": stats.RunsCreatedBasic(t.Hitting),
		"era":     stats.EarnedRunAverage(t.Pitching),
		"whip":    stats.WHIP(t.Pitching),
		"fip":     fip,
		"der":     stats.DefensiveEfficiency(t.Pitching),
		"fipar":   stats.FIPAboveReplacement(fip, t.Pitching.InningsPitched),
		"pythag":  stats.PythagoreanVariance(float64(t.Wins), float64(t.GamesPlayed), float64(t.RunsScored), float64(t.RunsAllowed)),
	}
}

// BuildPlayers turns season stat splits for one category into Player
// entities, deduplicating players who appear under multiple clubs after a
// trade. The stat values always come from the first split seen for an id
// (the upstream season aggregate is identical on every split); only the
// club set grows, in first-seen order.
func BuildPlayers(role string, splits []models.StatSplit, leagueByTeam map[int]string) []models.Player {
	var players []models.Player
	index := make(map[int]int)

	for _, split := range splits {
		if split.Player.ID == 0 {
			continue
		}

		if at, seen := index[split.Player.ID]; seen {
			p := &players[at]
			if split.Team.Abbreviation != "" && !contains(p.Teams, split.Team.Abbreviation) {
				p.Teams = append(p.Teams, split.Team.Abbreviation)
			}
			if p.League == "" {
				p.League = leagueByTeam[split.Team.ID]
			}
			continue
		}

		category := stats.CategoryHitting
		if role == models.RolePitcher {
			category = stats.CategoryPitching
		}
		line := stats.Normalize(category, map[string]models.RawCategoryStats{category: split.Stat})

		player := models.Player{
			ID:       split.Player.ID,
			Name:     split.Player.FullName,
			Role:     role,
			Position: split.Position.Abbreviation,
			Age:      split.Player.CurrentAge,
			Bats:     split.Player.BatSide.Code,
			Throws:   split.Player.PitchHand.Code,
			League:   leagueByTeam[split.Team.ID],
			Stats:    line,
		}
		if split.Team.Abbreviation != "" {
			player.Teams = []string{split.Team.Abbreviation}
		}
		player.Derived = playerMetrics(role, line)

		index[split.Player.ID] = len(players)
		players = append(players, player)
	}

	return players
}

func playerMetrics(role string, line models.StatLine) map[string]float64 {
	if role == models.RolePitcher {
		fip := stats.FIPScaled(line)
		return map[string]float64{
			"era":   stats.EarnedRunAverage(line),
			"whip":  stats.WHIP(line),
			"fip":   fip,
			"fipar": stats.FIPAboveReplacement(fip, line.InningsPitched),
		}
	}
	return map[string]float64{
		"avg":     stats.BattingAverage(line),
		"obp":     stats.OnBasePercentage(line),
		"slg":     stats.Slugging(line),
		"iso":     stats.IsolatedPower(line),
		"rc":      stats.RunsCreated(line),
		"rcBasic": stats.RunsCreatedBasic(line),
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
