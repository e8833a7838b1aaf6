package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmorneau/sabrpage/internal/aggregate"
	"github.com/dmorneau/sabrpage/internal/api/mlb"
	"github.com/dmorneau/sabrpage/internal/chart"
	"github.com/dmorneau/sabrpage/internal/leaderboard"
	"github.com/dmorneau/sabrpage/internal/models"
	"github.com/dmorneau/sabrpage/internal/render"
	"github.com/dmorneau/sabrpage/internal/repository/memory"
)

const boardSize = 10

// PublishService runs one end-to-end regeneration: fetch, normalize,
// derive, aggregate, render, write.
type PublishService struct {
	api            *mlb.API
	repo           *memory.Repository
	renderer       *render.Renderer
	seasonOverride int
	spotlight      string
}

func NewPublishService(api *mlb.API, repo *memory.Repository, renderer *render.Renderer, seasonOverride int, spotlight string) *PublishService {
	return &PublishService{
		api:            api,
		repo:           repo,
		renderer:       renderer,
		seasonOverride: seasonOverride,
		spotlight:      spotlight,
	}
}

// Publish regenerates all artifacts and returns a short run summary for
// the notifier. When the resolved season joins to zero teams the run is
// retried once against the prior season before giving up.
func (s *PublishService) Publish() (string, error) {
	season, err := s.currentSeason()
	if err != nil {
		return "", err
	}

	summary, err := s.publishSeason(season)
	if errors.Is(err, aggregate.ErrNoQualifyingTeams) {
		slog.Warn("No qualifying teams, retrying prior season", "season", season)
		return s.publishSeason(season - 1)
	}
	return summary, err
}

func (s *PublishService) currentSeason() (int, error) {
	info := s.repo.GetSeason()
	if info == nil || time.Since(info.LastUpdated) > 24*time.Hour {
		season, err := s.api.ResolveSeason(s.seasonOverride)
		if err != nil {
			return 0, err
		}
		s.repo.SaveSeason(&models.SeasonInfo{Season: season, LastUpdated: time.Now()})
		return season, nil
	}
	return info.Season, nil
}

func (s *PublishService) publishSeason(season int) (string, error) {
	slog.Info("Publishing season", "season", season)

	apiTeams, err := s.api.GetTeams(season)
	if err != nil {
		return "", fmt.Errorf("error fetching teams: %w", err)
	}

	standings, err := s.api.GetStandings(season)
	if err != nil {
		return "", fmt.Errorf("error fetching standings: %w", err)
	}

	teamStats := make(map[int]map[string]models.RawCategoryStats)
	for _, at := range apiTeams {
		if _, ok := standings[at.ID]; !ok {
			continue
		}
		categories, err := s.api.GetTeamStats(at.ID, season)
		if err != nil {
			return "", fmt.Errorf("error fetching team stats: %w", err)
		}
		teamStats[at.ID] = categories
	}

	teams, err := aggregate.BuildTeams(apiTeams, standings, teamStats)
	if err != nil {
		return "", err
	}

	leagueByTeam := make(map[int]string)
	for _, at := range apiTeams {
		if at.League.Name != "" {
			leagueByTeam[at.ID] = at.League.Name
		}
	}

	hittingSplits, err := s.api.GetSeasonPlayerStats("hitting", season)
	if err != nil {
		return "", fmt.Errorf("error fetching hitting splits: %w", err)
	}
	pitchingSplits, err := s.api.GetSeasonPlayerStats("pitching", season)
	if err != nil {
		return "", fmt.Errorf("error fetching pitching splits: %w", err)
	}

	batters := aggregate.BuildPlayers(models.RoleBatter, hittingSplits, leagueByTeam)
	pitchers := aggregate.BuildPlayers(models.RolePitcher, pitchingSplits, leagueByTeam)

	snap := models.Snapshot{
		Season:   season,
		Updated:  time.Now().UTC().Format(time.RFC3339),
		Batters:  batters,
		Pitchers: pitchers,
	}

	series := chart.TeamSeries(teams, nil)
	spotlight := resolveSpotlight(batters, pitchers, s.spotlight)

	if err := s.renderer.WriteStandingsPage(season, teams, series); err != nil {
		return "", err
	}
	if err := s.renderer.WriteLeaderboardPage(snap, spotlight, batterBoards(batters), pitcherBoards(pitchers)); err != nil {
		return "", err
	}
	if err := s.renderer.WriteSnapshot(snap); err != nil {
		return "", err
	}

	slog.Info("Publish complete", "season", season, "teams", len(teams), "batters", len(batters), "pitchers", len(pitchers))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Published %d season pages\n", season))
	sb.WriteString(fmt.Sprintf("Teams: %d\n", len(teams)))
	sb.WriteString(fmt.Sprintf("Batters: %d, Pitchers: %d\n", len(batters), len(pitchers)))
	sb.WriteString(fmt.Sprintf("Updated: %s", snap.Updated))
	return sb.String(), nil
}

// resolveSpotlight matches the configured spotlight name against the
// full player pool, batters first. Misspelled names still resolve via
// the fuzzy lookup; nothing close enough means no banner, never an
// error.
func resolveSpotlight(batters, pitchers []models.Player, name string) *models.Player {
	if name == "" {
		return nil
	}

	pool := make([]models.Player, 0, len(batters)+len(pitchers))
	pool = append(pool, batters...)
	pool = append(pool, pitchers...)

	p, ok := leaderboard.FindPlayer(pool, name)
	if !ok {
		slog.Warn("Spotlight player not found", "name", name)
		return nil
	}
	return &p
}

func batterBoards(batters []models.Player) []render.Board {
	return []render.Board{
		topBoard(batters, "Home Runs", "hr", 0, false, false),
		topBoard(batters, "Batting Average", "avg", 0, true, true),
		topBoard(batters, "On-Base Percentage", "obp", 0, true, true),
		topBoard(batters, "Isolated Power", "iso", 0, true, true),
		topBoard(batters, "Runs Created", "rc", 1, false, false),
		topBoard(batters, "Runs Created (Basic)", "rcBasic", 1, false, false),
		topBoard(batters, "Stolen Bases", "sb", 0, false, false),
	}
}

func pitcherBoards(pitchers []models.Player) []render.Board {
	return []render.Board{
		topBoard(pitchers, "ERA", "era", 2, false, true),
		topBoard(pitchers, "WHIP", "whip", 2, false, true),
		topBoard(pitchers, "FIP", "fip", 2, false, true),
		topBoard(pitchers, "Strikeouts", "so", 0, false, false),
		topBoard(pitchers, "Wins", "wins", 0, false, false),
		topBoard(pitchers, "Saves", "saves", 0, false, false),
		topBoard(pitchers, "FIP Above Replacement", "fipar", 0, false, false),
	}
}

func topBoard(players []models.Player, title, key string, decimals int, rate, qualified bool) render.Board {
	cfg := leaderboard.ViewConfig{
		League:        leaderboard.LeagueAll,
		Count:         boardSize,
		QualifiedOnly: qualified,
		SortKey:       key,
		SortAscending: leaderboard.DefaultAscending(key),
	}
	return render.Board{
		Title:     title,
		Key:       key,
		Decimals:  decimals,
		Rate:      rate,
		Qualified: qualified,
		Players:   leaderboard.ComputeView(players, cfg),
	}
}
