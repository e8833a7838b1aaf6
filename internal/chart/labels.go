package chart

// Label placement for scatter plots. Points are processed strictly in
// input order; each one tries the six palette candidates in order and
// takes the first whose label rectangle clears every rectangle already
// accepted. When all six collide the point falls back to candidate 0 and
// the overlap is tolerated. Greedy first-fit keeps placements identical
// across re-renders, which matters more here than optimal packing with
// at most fifteen points per chart.

// Point is one labeled position in screen space, with optional auxiliary
// values carried through to the rendered tooltip.
type Point struct {
	X     float64            `json:"x"`
	Y     float64            `json:"y"`
	Label string             `json:"label"`
	Aux   map[string]float64 `json:"aux,omitempty"`
}

// Placement is a candidate label position relative to its point.
type Placement struct {
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
	Align string  `json:"align"` // "start", "end" or "middle"
}

// palette lists the candidates in preference order: below-right,
// above-right, below-left, above-left, centered-above, centered-below.
// Offsets are in pixels with y growing downward.
var palette = [6]Placement{
	{DX: 6, DY: 13, Align: "start"},
	{DX: 6, DY: -5, Align: "start"},
	{DX: -6, DY: 13, Align: "end"},
	{DX: -6, DY: -5, Align: "end"},
	{DX: 0, DY: -5, Align: "middle"},
	{DX: 0, DY: 13, Align: "middle"},
}

// Palette exposes the candidate placements for rendering.
func Palette() [6]Placement {
	return palette
}

const labelHeight = 12.0

// Measurer reports the rendered pixel width of a label.
type Measurer func(text string) float64

// ApproxWidth estimates label width for the page's 11px sans-serif label
// font without a font engine on hand.
func ApproxWidth(text string) float64 {
	return float64(len(text)) * 6.2
}

type rect struct {
	x0, y0, x1, y1 float64
}

// overlaps is the separating-axis test for unrotated rectangles: the two
// overlap unless one is entirely left, right, above or below the other.
func overlaps(a, b rect) bool {
	if a.x1 < b.x0 || b.x1 < a.x0 {
		return false
	}
	if a.y1 < b.y0 || b.y1 < a.y0 {
		return false
	}
	return true
}

func labelRect(p Point, c Placement, width float64) rect {
	x := p.X + c.DX
	var x0 float64
	switch c.Align {
	case "end":
		x0 = x - width
	case "middle":
		x0 = x - width/2
	default:
		x0 = x
	}
	// DY positions the text baseline; the box extends one label height up.
	y1 := p.Y + c.DY
	return rect{x0: x0, y0: y1 - labelHeight, x1: x0 + width, y1: y1}
}

// Box is a resolved label rectangle in screen coordinates, used by the
// renderer to draw the background patch behind each label.
type Box struct {
	X, Y, W, H float64
}

// LabelBox computes the rectangle a placement produces for a point's
// label at the measured width.
func LabelBox(p Point, placement Placement, width float64) Box {
	r := labelRect(p, placement, width)
	return Box{X: r.x0, Y: r.y0, W: r.x1 - r.x0, H: r.y1 - r.y0}
}

// ResolveLabels picks one palette index per point. Every point gets an
// assignment; the function never fails. A nil measurer uses ApproxWidth.
func ResolveLabels(points []Point, measure Measurer) []int {
	if measure == nil {
		measure = ApproxWidth
	}

	selected := make([]int, len(points))
	accepted := make([]rect, 0, len(points))

	for i, p := range points {
		width := measure(p.Label)
		choice := 0
		chosen := labelRect(p, palette[0], width)

		for c, cand := range palette {
			r := labelRect(p, cand, width)
			if clearOf(r, accepted) {
				choice = c
				chosen = r
				break
			}
		}

		selected[i] = choice
		accepted = append(accepted, chosen)
	}

	return selected
}

func clearOf(r rect, accepted []rect) bool {
	for _, a := range accepted {
		if overlaps(r, a) {
			return false
		}
	}
	return true
}
