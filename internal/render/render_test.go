package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorneau/sabrpage/internal/chart"
	"github.com/dmorneau/sabrpage/internal/models"
)

func sampleTeams() []models.Team {
	return []models.Team{
		{
			ID: 147, Name: "New York Yankees", Abbreviation: "NYY",
			League: "American League", Division: "American League East",
			Wins: 94, Losses: 68, GamesBack: "-", ClinchIndicator: "y",
			RunsScored: 820, RunsAllowed: 680,
			Derived: map[string]float64{
				"pythag": 2.4, "obp": 0.334, "iso": 0.182, "fip": 0.41, "der": 0.702,
			},
		},
		{
			ID: 110, Name: "Baltimore Orioles", Abbreviation: "BAL",
			League: "American League", Division: "American League East",
			Wins: 89, Losses: 73, GamesBack: "5.0",
			RunsScored: 760, RunsAllowed: 700,
			Derived: map[string]float64{
				"pythag": -1.1, "obp": 0.321, "iso": 0.171, "fip": 0.55, "der": 0.695,
			},
		},
	}
}

func TestWriteStandingsPage(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	teams := sampleTeams()
	series := chart.TeamSeries(teams, func(string) float64 { return 40 })
	require.NoError(t, r.WriteStandingsPage(2026, teams, series))

	html := readFile(t, filepath.Join(dir, StandingsFile))

	assert.Contains(t, html, "American League East")
	// Division table is ordered by wins, so the Yankees row comes first.
	assert.Less(t, strings.Index(html, "New York Yankees"), strings.Index(html, "Baltimore Orioles"))
	assert.Contains(t, html, `<span class="clinch">y</span>`)
	// Rate stats render baseball-style.
	assert.Contains(t, html, ".334")
	// All three charts made it onto the page with labels resolved.
	for _, slug := range []string{"runs", "obp-iso", "fip-der"} {
		assert.Contains(t, html, `id="chart-`+slug+`"`)
	}
	assert.Contains(t, html, ">NYY</text>")
	// The patch rectangles use the width the collision pass measured,
	// not a re-approximation from the label text.
	assert.Contains(t, html, `width="40" height="12"`)
}

func TestWriteLeaderboardPageAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	snap := models.Snapshot{
		Season:  2026,
		Updated: "2026-08-30T10:30:00Z",
		Batters: []models.Player{
			{
				ID: 660271, Name: "Slug Garcia", Role: models.RoleBatter, Age: 29,
				Teams: []string{"BOS", "NYY"},
				Stats: models.StatLine{HomeRuns: 41, PlateAppearances: 610},
				Derived: map[string]float64{"avg": 0.291, "obp": 0.372},
			},
		},
		Pitchers: []models.Player{
			{
				ID: 543037, Name: "Gerrit Cole", Role: models.RolePitcher, Age: 34,
				Teams: []string{"NYY"},
				Stats: models.StatLine{InningsPitched: 192, StrikeOuts: 222},
				Derived: map[string]float64{"era": 2.87, "fip": 3.12, "fipar": 61},
			},
		},
	}

	batterBoards := []Board{
		{Title: "Home Runs", Key: "hr", Players: snap.Batters},
	}
	pitcherBoards := []Board{
		{Title: "ERA", Key: "era", Decimals: 2, Qualified: true, Players: snap.Pitchers},
	}

	require.NoError(t, r.WriteLeaderboardPage(snap, &snap.Pitchers[0], batterBoards, pitcherBoards))
	require.NoError(t, r.WriteSnapshot(snap))

	html := readFile(t, filepath.Join(dir, LeaderboardFile))
	assert.Contains(t, html, "Slug Garcia")
	assert.Contains(t, html, "<strong>Spotlight:</strong> Gerrit Cole (NYY)")
	assert.Contains(t, html, "2.87 ERA, 3.12 FIP, 222 K")
	assert.Contains(t, html, "BOS/NYY", "traded player shows the joined club label")
	assert.Contains(t, html, "ERA &#8224;", "qualified boards carry the dagger")
	assert.Contains(t, html, `"season":2026`, "dataset is embedded for client-side filtering")

	// Snapshot round-trips with the documented shape.
	var back models.Snapshot
	raw := readFile(t, filepath.Join(dir, SnapshotFile))
	require.NoError(t, json.Unmarshal([]byte(raw), &back))
	assert.Equal(t, 2026, back.Season)
	assert.Equal(t, "2026-08-30T10:30:00Z", back.Updated)
	require.Len(t, back.Batters, 1)
	assert.Equal(t, float64(41), back.Batters[0].Stats.HomeRuns)
}

func TestWriteLeaderboardPageWithoutSpotlight(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	snap := models.Snapshot{Season: 2026, Updated: "2026-08-30T10:30:00Z"}
	require.NoError(t, r.WriteLeaderboardPage(snap, nil, nil, nil))

	html := readFile(t, filepath.Join(dir, LeaderboardFile))
	assert.NotContains(t, html, "Spotlight:")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
