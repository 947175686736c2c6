package poisson

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// candidate returns a point of the given radius placed at a uniformly random
// angle around `around`, at a distance between the separation the two discs
// require & twice that.
func (g *Generator) candidate(around Point, radius float64) Point {
	inner := around.Radius + radius
	dist := inner + g.rng.Float64()*inner
	angle := g.rng.Float64() * 2 * math.Pi

	return Point{
		Position: model2d.Coord{
			X: around.Position.X + dist*math.Cos(angle),
			Y: around.Position.Y + dist*math.Sin(angle),
		},
		Radius: radius,
	}
}

// valid returns if c can be accepted given the points placed so far.
// We check the cheap things first: region, then filters, then neighbours.
func (g *Generator) valid(c Point) bool {
	g.attempts++

	if !g.insideRegion(c) {
		return false
	}

	for _, fn := range g.cfg.Filters {
		if !fn(c) {
			return false
		}
	}

	return !g.hasCloseNeighbour(c)
}

// insideRegion returns if the whole disc of c sits inside the sample region.
// Nb. the upper bound is exclusive so the disc never touches the far edge.
func (g *Generator) insideRegion(c Point) bool {
	p, r := c.Position, c.Radius
	return p.X-r >= 0 &&
		p.X+r < g.cfg.Size.X &&
		p.Y-r >= 0 &&
		p.Y+r < g.cfg.Size.Y
}

// hasCloseNeighbour returns if any accepted point overlaps c.
// Radii vary per point so the window has to reach as far as c's radius plus
// the largest radius accepted so far.
func (g *Generator) hasCloseNeighbour(c Point) bool {
	half := g.searchHalfWidth(c.Radius)
	for idx := range g.grid.Neighbours(c, half) {
		if c.overlaps(g.points[idx]) {
			return true
		}
	}
	return false
}

// searchHalfWidth returns the neighbour window (in cells either side) for a
// candidate of the given radius.
func (g *Generator) searchHalfWidth(radius float64) int {
	return g.grid.HalfWidth(radius + g.maxRadius)
}
