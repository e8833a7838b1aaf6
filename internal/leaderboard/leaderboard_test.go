package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorneau/sabrpage/internal/models"
)

func batter(name, league string, age int, pa, hr float64) models.Player {
	return models.Player{
		Name:   name,
		Role:   models.RoleBatter,
		League: league,
		Age:    age,
		Stats:  models.StatLine{PlateAppearances: pa, HomeRuns: hr},
		Derived: map[string]float64{
			"obp": hr / 100, // arbitrary but distinct per player
		},
	}
}

func pitcher(name string, ip, era float64) models.Player {
	return models.Player{
		Name:    name,
		Role:    models.RolePitcher,
		League:  "American League",
		Stats:   models.StatLine{InningsPitched: ip},
		Derived: map[string]float64{"era": era},
	}
}

func TestQualificationThresholds(t *testing.T) {
	assert.False(t, Qualified(batter("Short Season", "AL", 25, 250, 10)), "PA=250 misses the threshold")
	assert.True(t, Qualified(batter("Full Season", "AL", 25, 251, 10)), "PA=251 makes the threshold")
	assert.False(t, Qualified(pitcher("Opener", 80.2, 3.50)))
	assert.True(t, Qualified(pitcher("Workhorse", 81, 3.50)))
}

func TestComputeViewQualifiedOnly(t *testing.T) {
	players := []models.Player{
		batter("A", "American League", 27, 250, 20),
		batter("B", "American League", 27, 251, 15),
	}

	view := ComputeView(players, ViewConfig{SortKey: "hr", QualifiedOnly: true})
	require.Len(t, view, 1)
	assert.Equal(t, "B", view[0].Name)
}

func TestComputeViewLeagueAndAgeFilters(t *testing.T) {
	players := []models.Player{
		batter("AL Vet", "American League", 35, 600, 30),
		batter("AL Kid", "American League", 23, 600, 25),
		batter("NL Kid", "National League", 23, 600, 40),
	}

	view := ComputeView(players, ViewConfig{League: "American League", MaxAge: 25, SortKey: "hr"})
	require.Len(t, view, 1)
	assert.Equal(t, "AL Kid", view[0].Name)

	// MaxAge is inclusive.
	view = ComputeView(players, ViewConfig{League: LeagueAll, MaxAge: 23, SortKey: "hr"})
	assert.Len(t, view, 2)

	// Zero MaxAge disables the filter.
	view = ComputeView(players, ViewConfig{League: LeagueAll, SortKey: "hr"})
	assert.Len(t, view, 3)
}

func TestComputeViewSortDirections(t *testing.T) {
	players := []models.Player{
		batter("Mid", "AL", 27, 600, 25),
		batter("Top", "AL", 27, 600, 45),
		batter("Low", "AL", 27, 600, 10),
	}

	cfg := Toggle(ViewConfig{}, "hr")
	assert.False(t, cfg.SortAscending, "hr defaults descending")

	view := ComputeView(players, cfg)
	require.Len(t, view, 3)
	assert.Equal(t, []string{"Top", "Mid", "Low"}, []string{view[0].Name, view[1].Name, view[2].Name})

	pitchers := []models.Player{
		pitcher("High ERA", 180, 5.10),
		pitcher("Ace", 200, 2.45),
	}
	cfg = Toggle(ViewConfig{}, "era")
	assert.True(t, cfg.SortAscending, "era defaults ascending")

	view = ComputeView(pitchers, cfg)
	assert.Equal(t, "Ace", view[0].Name)
}

func TestToggleFlipsAndResets(t *testing.T) {
	cfg := Toggle(ViewConfig{}, "era")
	assert.True(t, cfg.SortAscending)

	// Same key: flip.
	cfg = Toggle(cfg, "era")
	assert.False(t, cfg.SortAscending)

	// New key: reset to that key's default, not the current direction.
	cfg = Toggle(cfg, "hr")
	assert.Equal(t, "hr", cfg.SortKey)
	assert.False(t, cfg.SortAscending)

	cfg = Toggle(cfg, "whip")
	assert.True(t, cfg.SortAscending)
}

func TestComputeViewCountLimitAndStability(t *testing.T) {
	players := []models.Player{
		batter("First", "AL", 27, 600, 20),
		batter("Second", "AL", 27, 600, 20),
		batter("Third", "AL", 27, 600, 20),
	}

	view := ComputeView(players, ViewConfig{SortKey: "hr", Count: 2})
	require.Len(t, view, 2)
	// Equal values keep input order.
	assert.Equal(t, "First", view[0].Name)
	assert.Equal(t, "Second", view[1].Name)
}

func TestComputeViewDoesNotMutateInput(t *testing.T) {
	players := []models.Player{
		batter("B", "AL", 27, 600, 10),
		batter("A", "AL", 27, 600, 40),
	}

	ComputeView(players, ViewConfig{SortKey: "hr"})
	assert.Equal(t, "B", players[0].Name, "input order must be untouched")
}

func TestFindPlayer(t *testing.T) {
	players := []models.Player{
		batter("Mookie Betts", "NL", 31, 600, 25),
		batter("Aaron Judge", "AL", 32, 600, 50),
	}

	p, ok := FindPlayer(players, "aron judge")
	require.True(t, ok)
	assert.Equal(t, "Aaron Judge", p.Name)

	_, ok = FindPlayer(players, "zzzzzz")
	assert.False(t, ok)
}
