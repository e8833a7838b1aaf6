package models

// RawCategoryStats is one stat category payload (hitting, pitching or
// fielding) exactly as the upstream API returns it: a flat field->value
// mapping where numbers may arrive as JSON numbers or as strings
// ("inningsPitched":"1443.2") and fields are absent when the category
// does not track them.
type RawCategoryStats map[string]any

type TeamsResponse struct {
	Teams []APITeam `json:"teams"`
}

type APITeam struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	TeamName     string   `json:"teamName"`
	League       NamedRef `json:"league"`
	Division     NamedRef `json:"division"`
}

type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StandingsResponse struct {
	Records []StandingsRecord `json:"records"`
}

type StandingsRecord struct {
	League      NamedRef     `json:"league"`
	Division    NamedRef     `json:"division"`
	TeamRecords []TeamRecord `json:"teamRecords"`
}

type TeamRecord struct {
	Team              NamedRef `json:"team"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	GamesPlayed       int      `json:"gamesPlayed"`
	GamesBack         string   `json:"gamesBack"`
	WildCardGamesBack string   `json:"wildCardGamesBack"`
	WildCardRank      string   `json:"wildCardRank"`
	DivisionRank      string   `json:"divisionRank"`
	ClinchIndicator   string   `json:"clinchIndicator"`
	RunsScored        int      `json:"runsScored"`
	RunsAllowed       int      `json:"runsAllowed"`
}

type StatsResponse struct {
	Stats []StatGroup `json:"stats"`
}

type StatGroup struct {
	Group  GroupRef    `json:"group"`
	Splits []StatSplit `json:"splits"`
}

type GroupRef struct {
	DisplayName string `json:"displayName"`
}

type StatSplit struct {
	Season   string           `json:"season"`
	Player   SplitPlayer      `json:"player"`
	Team     SplitTeam        `json:"team"`
	Position PositionRef      `json:"position"`
	Stat     RawCategoryStats `json:"stat"`
}

type SplitPlayer struct {
	ID         int     `json:"id"`
	FullName   string  `json:"fullName"`
	CurrentAge int     `json:"currentAge"`
	BatSide    CodeRef `json:"batSide"`
	PitchHand  CodeRef `json:"pitchHand"`
}

type CodeRef struct {
	Code string `json:"code"`
}

type SplitTeam struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

type PositionRef struct {
	Abbreviation string `json:"abbreviation"`
}
