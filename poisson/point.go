package poisson

import (
	"github.com/unixpickle/model3d/model2d"
)

// Point is an accepted sample: a disc centred at Position.
type Point struct {
	Position model2d.Coord
	Radius   float64
}

// overlaps returns if the discs of p and o intersect.
// Touching discs (distance == r1 + r2) do not overlap.
func (p Point) overlaps(o Point) bool {
	d := p.Position.Sub(o.Position)
	limit := p.Radius + o.Radius
	return d.Dot(d) < limit*limit
}
