// Package render writes the two static artifacts: the standings page with
// its scatter charts, and the leaderboard page with its JSON sidecar.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmorneau/sabrpage/internal/chart"
	"github.com/dmorneau/sabrpage/internal/leaderboard"
	"github.com/dmorneau/sabrpage/internal/models"
)

const (
	StandingsFile   = "index.html"
	LeaderboardFile = "leaders.html"
	SnapshotFile    = "leaders.json"
)

type Renderer struct {
	outDir string

	standings *template.Template
	leaders   *template.Template
}

func NewRenderer(outDir string) (*Renderer, error) {
	funcs := template.FuncMap{
		"rate":  formatRate,
		"fixed": formatFixed,
		"team":  func(p models.Player) string { return p.TeamLabel() },
		"stat":  leaderboard.StatValue,
		"add1":  func(i int) int { return i + 1 },
	}

	standings, err := template.New("standings").Funcs(funcs).Parse(standingsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing standings template: %w", err)
	}
	leaders, err := template.New("leaders").Funcs(funcs).Parse(leadersTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing leaders template: %w", err)
	}

	return &Renderer{outDir: outDir, standings: standings, leaders: leaders}, nil
}

// formatRate renders rate stats baseball-style: .350, 1.250.
func formatRate(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	return strings.TrimPrefix(s, "0")
}

func formatFixed(decimals int, v float64) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

type divisionView struct {
	Name  string
	Teams []models.Team
}

type chartView struct {
	Slug, Title    string
	XLabel, YLabel string
	Width, Height  float64
	Points         []chart.Point
	Labels         []labelView
}

type labelView struct {
	Text   string
	X, Y   float64
	Anchor string
	Box    chart.Box
}

type standingsPage struct {
	Season    int
	Divisions []divisionView
	Charts    []chartView
}

// WriteStandingsPage renders the division tables and the three scatter
// charts as one static page.
func (r *Renderer) WriteStandingsPage(season int, teams []models.Team, series []chart.Series) error {
	page := standingsPage{
		Season:    season,
		Divisions: groupByDivision(teams),
	}
	for _, s := range series {
		page.Charts = append(page.Charts, buildChartView(s))
	}

	return r.writeTemplate(r.standings, StandingsFile, page)
}

func groupByDivision(teams []models.Team) []divisionView {
	byDivision := make(map[string][]models.Team)
	var order []string
	for _, t := range teams {
		if _, seen := byDivision[t.Division]; !seen {
			order = append(order, t.Division)
		}
		byDivision[t.Division] = append(byDivision[t.Division], t)
	}
	sort.Strings(order)

	var views []divisionView
	for _, name := range order {
		div := byDivision[name]
		sort.SliceStable(div, func(i, j int) bool {
			return div[i].Wins > div[j].Wins
		})
		views = append(views, divisionView{Name: name, Teams: div})
	}
	return views
}

func buildChartView(s chart.Series) chartView {
	view := chartView{
		Slug:   s.Slug,
		Title:  s.Title,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		Width:  s.Width,
		Height: s.Height,
		Points: s.Points,
	}

	palette := chart.Palette()
	for i, p := range s.Points {
		placement := palette[s.Placements[i]]
		// Use the width the collision pass measured, so the patch matches
		// the reserved rectangle even under a non-default measurer.
		width := s.Widths[i]
		view.Labels = append(view.Labels, labelView{
			Text:   p.Label,
			X:      p.X + placement.DX,
			Y:      p.Y + placement.DY,
			Anchor: placement.Align,
			Box:    chart.LabelBox(p, placement, width),
		})
	}
	return view
}

// Board is one precomputed leaderboard table. Rate controls baseball-style
// ".350" formatting; Qualified marks boards restricted to qualified
// players.
type Board struct {
	Title     string
	Key       string
	Decimals  int
	Rate      bool
	Qualified bool
	Players   []models.Player
}

type leadersPage struct {
	Season        int
	Updated       string
	Spotlight     *models.Player
	BatterBoards  []Board
	PitcherBoards []Board
	DatasetJSON   template.JS
}

// WriteLeaderboardPage renders the precomputed default boards, an
// optional spotlight player banner, and embeds the full snapshot dataset
// for client-side tooling. A nil spotlight omits the banner.
func (r *Renderer) WriteLeaderboardPage(snap models.Snapshot, spotlight *models.Player, batterBoards, pitcherBoards []Board) error {
	dataset, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshalling leaderboard dataset: %w", err)
	}

	page := leadersPage{
		Season:        snap.Season,
		Updated:       snap.Updated,
		Spotlight:     spotlight,
		BatterBoards:  batterBoards,
		PitcherBoards: pitcherBoards,
		DatasetJSON:   template.JS(dataset),
	}

	return r.writeTemplate(r.leaders, LeaderboardFile, page)
}

// WriteSnapshot persists the sidecar JSON consumed by the leaderboard
// page.
func (r *Renderer) WriteSnapshot(snap models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}
	path := filepath.Join(r.outDir, SnapshotFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func (r *Renderer) writeTemplate(tmpl *template.Template, name string, data any) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(filepath.Join(r.outDir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
