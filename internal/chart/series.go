package chart

import (
	"github.com/dmorneau/sabrpage/internal/models"
)

// Canvas geometry shared by every scatter chart on the standings page.
const (
	CanvasWidth  = 640.0
	CanvasHeight = 420.0
	margin       = 50.0
)

// Series is one fully-resolved scatter chart: projected points plus the
// selected palette index for every label.
type Series struct {
	Slug       string  `json:"slug"`
	Title      string  `json:"title"`
	XLabel     string  `json:"xLabel"`
	YLabel     string  `json:"yLabel"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Points     []Point `json:"points"`
	Placements []int   `json:"placements"`
	// Widths holds the measured label width per point, from the same
	// measurer that resolved Placements, so renderers draw the exact
	// rectangles the collision pass reserved.
	Widths []float64 `json:"widths"`
}

// TeamSeries builds the three standings-page comparisons: run environment,
// offense shape and run prevention.
func TeamSeries(teams []models.Team, measure Measurer) []Series {
	return []Series{
		buildSeries("runs", "Runs Scored vs Runs Allowed", "Runs Scored", "Runs Allowed", teams,
			func(t models.Team) float64 { return float64(t.RunsScored) },
			func(t models.Team) float64 { return float64(t.RunsAllowed) },
			measure),
		buildSeries("obp-iso", "On-Base vs Isolated Power", "OBP", "ISO", teams,
			func(t models.Team) float64 { return t.Derived["obp"] },
			func(t models.Team) float64 { return t.Derived["iso"] },
			measure),
		buildSeries("fip-der", "FIP vs Defensive Efficiency", "FIP", "DER", teams,
			func(t models.Team) float64 { return t.Derived["fip"] },
			func(t models.Team) float64 { return t.Derived["der"] },
			measure),
	}
}

func buildSeries(slug, title, xLabel, yLabel string, teams []models.Team, xf, yf func(models.Team) float64, measure Measurer) Series {
	s := Series{
		Slug:   slug,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Width:  CanvasWidth,
		Height: CanvasHeight,
	}

	if measure == nil {
		measure = ApproxWidth
	}

	if len(teams) == 0 {
		s.Placements = []int{}
		s.Widths = []float64{}
		return s
	}

	xMin, xMax := domain(teams, xf)
	yMin, yMax := domain(teams, yf)

	for _, t := range teams {
		s.Points = append(s.Points, Point{
			X:     project(xf(t), xMin, xMax, margin, CanvasWidth-margin),
			Y:     project(yf(t), yMin, yMax, CanvasHeight-margin, margin),
			Label: t.Abbreviation,
			Aux: map[string]float64{
				"x":    xf(t),
				"y":    yf(t),
				"wins": float64(t.Wins),
			},
		})
	}

	for _, p := range s.Points {
		s.Widths = append(s.Widths, measure(p.Label))
	}
	s.Placements = ResolveLabels(s.Points, measure)
	return s
}

func domain(teams []models.Team, f func(models.Team) float64) (float64, float64) {
	lo, hi := f(teams[0]), f(teams[0])
	for _, t := range teams[1:] {
		v := f(t)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// project maps a domain value linearly into [outLo, outHi]. A degenerate
// domain collapses every point to the midpoint.
func project(v, lo, hi, outLo, outHi float64) float64 {
	if hi == lo {
		return (outLo + outHi) / 2
	}
	return outLo + (v-lo)/(hi-lo)*(outHi-outLo)
}
