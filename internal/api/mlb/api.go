package mlb

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmorneau/sabrpage/internal/models"
)

// League ids for the standings endpoint: American and National.
const regularSeasonLeagues = "103,104"

// playerStatsLimit caps the season player pool per category. The league
// runs well under a thousand batters or pitchers in a season.
const playerStatsLimit = "1500"

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetTeams fetches every team registered for the season, exhibition
// squads included; the aggregator filters those out later.
func (a *API) GetTeams(season int) ([]models.APITeam, error) {
	var resp models.TeamsResponse
	params := map[string]string{
		"sportId": sportID,
		"season":  strconv.Itoa(season),
	}

	if err := a.client.Get("/teams", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	return resp.Teams, nil
}

// GetStandings fetches regular-season standings for both leagues, keyed
// by team id.
func (a *API) GetStandings(season int) (map[int]models.TeamRecord, error) {
	var resp models.StandingsResponse
	params := map[string]string{
		"leagueId":       regularSeasonLeagues,
		"season":         strconv.Itoa(season),
		"standingsTypes": "regularSeason",
	}

	if err := a.client.Get("/standings", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	standings := make(map[int]models.TeamRecord)
	for _, record := range resp.Records {
		for _, tr := range record.TeamRecords {
			standings[tr.Team.ID] = tr
		}
	}

	return standings, nil
}

// GetTeamStats fetches a team's season stat categories, keyed by category
// name (hitting, pitching, fielding). Categories the API omits simply stay
// absent; the normalizer treats them as all-zero.
func (a *API) GetTeamStats(teamID, season int) (map[string]models.RawCategoryStats, error) {
	var resp models.StatsResponse
	endpoint := fmt.Sprintf("/teams/%d/stats", teamID)
	params := map[string]string{
		"stats":  "season",
		"group":  "hitting,pitching,fielding",
		"season": strconv.Itoa(season),
	}

	if err := a.client.Get(endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("fetching stats for team %d: %w", teamID, err)
	}

	categories := make(map[string]models.RawCategoryStats)
	for _, group := range resp.Stats {
		if len(group.Splits) == 0 {
			continue
		}
		categories[group.Group.DisplayName] = group.Splits[0].Stat
	}

	return categories, nil
}

// GetSeasonPlayerStats fetches the season stat splits for one category
// group across the whole player pool. Traded players come back with one
// split per club, each carrying the same season aggregate.
func (a *API) GetSeasonPlayerStats(group string, season int) ([]models.StatSplit, error) {
	var resp models.StatsResponse
	params := map[string]string{
		"stats":      "season",
		"group":      group,
		"season":     strconv.Itoa(season),
		"sportId":    sportID,
		"playerPool": "all",
		"hydrate":    "person",
		"limit":      playerStatsLimit,
	}

	if err := a.client.Get("/stats", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching %s player stats: %w", group, err)
	}

	var splits []models.StatSplit
	for _, g := range resp.Stats {
		splits = append(splits, g.Splits...)
	}

	return splits, nil
}

// ResolveSeason probes for the most recent season with standings data:
// the current year first, then the year before. Early in the calendar year
// the upstream API has registered the new season but published nothing
// for it yet.
func (a *API) ResolveSeason(preferred int) (int, error) {
	if preferred == 0 {
		preferred = time.Now().Year()
	}

	for _, season := range []int{preferred, preferred - 1} {
		standings, err := a.GetStandings(season)
		if err != nil {
			return 0, err
		}
		if len(standings) > 0 {
			if season != preferred {
				slog.Info("Fell back to prior season", "season", season)
			}
			return season, nil
		}
	}

	return 0, fmt.Errorf("no standings data for season %d or %d", preferred, preferred-1)
}
