package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWidth makes rectangle geometry predictable in tests.
func fixedWidth(w float64) Measurer {
	return func(string) float64 { return w }
}

func TestResolveEmptyAndNilInput(t *testing.T) {
	assert.Empty(t, ResolveLabels(nil, nil))
	assert.Empty(t, ResolveLabels([]Point{}, fixedWidth(20)))
}

func TestResolveIsolatedPointsTakeFirstCandidate(t *testing.T) {
	points := []Point{
		{X: 100, Y: 100, Label: "NYY"},
		{X: 400, Y: 300, Label: "BOS"},
	}

	got := ResolveLabels(points, fixedWidth(20))
	assert.Equal(t, []int{0, 0}, got, "far-apart points should all use the preferred candidate")
}

func TestResolveNeighborsAvoidOverlap(t *testing.T) {
	// Close enough that both below-right rectangles would collide.
	points := []Point{
		{X: 100, Y: 100, Label: "NYY"},
		{X: 110, Y: 104, Label: "BOS"},
	}

	got := ResolveLabels(points, fixedWidth(24))
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0], "first point keeps placement priority")
	assert.NotEqual(t, 0, got[1], "second point must move off the colliding candidate")

	// The chosen rectangles really are disjoint.
	r0 := labelRect(points[0], palette[got[0]], 24)
	r1 := labelRect(points[1], palette[got[1]], 24)
	assert.False(t, overlaps(r0, r1))
}

func TestResolveDeterministic(t *testing.T) {
	points := []Point{
		{X: 100, Y: 100, Label: "NYY"},
		{X: 108, Y: 102, Label: "BOS"},
		{X: 95, Y: 107, Label: "TB"},
		{X: 300, Y: 210, Label: "BAL"},
		{X: 303, Y: 214, Label: "TOR"},
	}

	first := ResolveLabels(points, fixedWidth(22))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveLabels(points, fixedWidth(22)))
	}
}

func TestResolveFallbackAssignsEveryPoint(t *testing.T) {
	// Far more identically-placed points than the palette can separate.
	points := make([]Point, 12)
	for i := range points {
		points[i] = Point{X: 200, Y: 200, Label: "SEA"}
	}

	got := ResolveLabels(points, fixedWidth(30))
	require.Len(t, got, len(points))

	fallbacks := 0
	for _, idx := range got {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(palette))
		if idx == 0 {
			fallbacks++
		}
	}
	// Candidate 0 is both the first point's legitimate pick and everyone's
	// fallback once the palette is exhausted.
	assert.Greater(t, fallbacks, 1, "exhausted points fall back to candidate 0")
}

func TestResolveEarlierSelectionsNeverChange(t *testing.T) {
	base := []Point{
		{X: 100, Y: 100, Label: "NYY"},
		{X: 109, Y: 103, Label: "BOS"},
	}
	withMore := append(append([]Point{}, base...), Point{X: 104, Y: 98, Label: "TB"})

	short := ResolveLabels(base, fixedWidth(24))
	long := ResolveLabels(withMore, fixedWidth(24))

	assert.Equal(t, short, long[:2], "appending points must not disturb earlier placements")
}

func TestOverlapSeparatingAxis(t *testing.T) {
	a := rect{x0: 0, y0: 0, x1: 10, y1: 10}

	assert.True(t, overlaps(a, rect{x0: 5, y0: 5, x1: 15, y1: 15}))
	assert.False(t, overlaps(a, rect{x0: 11, y0: 0, x1: 20, y1: 10}), "entirely right")
	assert.False(t, overlaps(a, rect{x0: 0, y0: 11, x1: 10, y1: 20}), "entirely below")
	// Touching edges count as overlap; labels sharing a border still read
	// as crowded.
	assert.True(t, overlaps(a, rect{x0: 10, y0: 0, x1: 20, y1: 10}))
}

func TestLabelRectAlignment(t *testing.T) {
	p := Point{X: 100, Y: 100}

	start := labelRect(p, Placement{DX: 6, DY: 13, Align: "start"}, 30)
	assert.Equal(t, 106.0, start.x0)
	assert.Equal(t, 136.0, start.x1)

	end := labelRect(p, Placement{DX: -6, DY: 13, Align: "end"}, 30)
	assert.Equal(t, 64.0, end.x0)
	assert.Equal(t, 94.0, end.x1)

	mid := labelRect(p, Placement{DX: 0, DY: -5, Align: "middle"}, 30)
	assert.Equal(t, 85.0, mid.x0)
	assert.Equal(t, 115.0, mid.x1)
	assert.Equal(t, 95.0, mid.y1)
	assert.Equal(t, 83.0, mid.y0)
}
