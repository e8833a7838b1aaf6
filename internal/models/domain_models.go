package models

import (
	"strings"
	"time"
)

// StatLine is a dense, fully-defaulted stat record. Every field a formula
// can reference is present; anything the source category did not report is
// zero. For a pitching line, Hits/HomeRuns/BaseOnBalls etc. are the totals
// allowed, and Errors/DoublePlays are carried over from the fielding
// category when it was available.
type StatLine struct {
	GamesPlayed      float64 `json:"gamesPlayed"`
	AtBats           float64 `json:"atBats"`
	PlateAppearances float64 `json:"plateAppearances"`
	Hits             float64 `json:"hits"`
	Doubles          float64 `json:"doubles"`
	Triples          float64 `json:"triples"`
	HomeRuns         float64 `json:"homeRuns"`
	Runs             float64 `json:"runs"`
	RBI              float64 `json:"rbi"`
	BaseOnBalls      float64 `json:"baseOnBalls"`
	HitByPitch       float64 `json:"hitByPitch"`
	SacFlies         float64 `json:"sacFlies"`
	StolenBases      float64 `json:"stolenBases"`
	StrikeOuts       float64 `json:"strikeOuts"`
	TotalBases       float64 `json:"totalBases"`
	InningsPitched   float64 `json:"inningsPitched"`
	EarnedRuns       float64 `json:"earnedRuns"`
	Wins             float64 `json:"wins"`
	Losses           float64 `json:"losses"`
	Saves            float64 `json:"saves"`
	Errors           float64 `json:"errors"`
	DoublePlays      float64 `json:"doublePlays"`
}

// Team is one club with standings, normalized stat lines and derived
// metrics attached. Built once per publish run, read-only afterwards.
type Team struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	League          string `json:"league"`
	Division        string `json:"division"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	GamesPlayed     int    `json:"gamesPlayed"`
	GamesBack       string `json:"gamesBack"`
	DivisionRank    string `json:"divisionRank"`
	WildCardRank    string `json:"wildCardRank"`
	ClinchIndicator string `json:"clinchIndicator"`
	RunsScored      int    `json:"runsScored"`
	RunsAllowed     int    `json:"runsAllowed"`

	Hitting  StatLine           `json:"hitting"`
	Pitching StatLine           `json:"pitching"`
	Derived  map[string]float64 `json:"derived"`
}

// Player roles, i.e. which stat category the entity was built from. A
// two-way player appears once per role.
const (
	RoleBatter  = "batter"
	RolePitcher = "pitcher"
)

type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Bats     string `json:"bats"`
	Throws   string `json:"throws"`
	League   string `json:"league"`
	// Teams holds every club abbreviation the player appeared under this
	// season, in first-seen order. Stat values always come from the season
	// aggregate, never from a per-club split.
	Teams []string `json:"teams"`

	Stats   StatLine           `json:"stats"`
	Derived map[string]float64 `json:"derived"`
}

// TeamLabel renders the club set for display, e.g. "BOS/NYY" for a player
// traded mid-season.
func (p Player) TeamLabel() string {
	return strings.Join(p.Teams, "/")
}

// Snapshot is the sidecar JSON artifact consumed by the leaderboard page.
type Snapshot struct {
	Season   int      `json:"season"`
	Updated  string   `json:"updated"`
	Batters  []Player `json:"batters"`
	Pitchers []Player `json:"pitchers"`
}

// SeasonInfo caches the resolved season so scheduled runs can skip
// re-probing the API for availability.
type SeasonInfo struct {
	Season      int
	LastUpdated time.Time
}
