package poisson

import (
	"math"
	"math/rand"
	"time"

	"github.com/unixpickle/essentials"
)

// State describes where a Generator is in its run.
type State int

const (
	// Seeded generators can still produce points.
	Seeded State = iota

	// Exhausted generators found no room for further points. The run is
	// over regardless of the target count.
	Exhausted

	// Complete generators have produced TargetCount points.
	Complete
)

// String returns a human readable state name
func (s State) String() string {
	switch s {
	case Seeded:
		return "seeded"
	case Exhausted:
		return "exhausted"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Generator places discs of caller supplied radii one at a time using
// an active-list Poisson-disc algorithm.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	start Point

	// accepted points in generation order, the grid & active list
	// always refer to the same set of points.
	points []Point
	grid   *Grid
	active []int

	// smallest radius the grid was built for & the largest radius
	// we've been asked for
	minRadius float64
	maxRadius float64

	exhausted bool
	attempts  int
}

// NewGenerator validates cfg & returns a Generator ready for its first point.
// If rng is nil a time seeded source is used.
func NewGenerator(cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Generator{cfg: cfg, rng: rng}
	g.Reset()

	return g, nil
}

// Reset discards every generated point & rebuilds the generator from its
// config. The random source carries on from where it was.
func (g *Generator) Reset() {
	g.start = Point{Position: g.cfg.start()}
	g.minRadius = g.cfg.MinRadius
	g.maxRadius = g.cfg.MaxRadius
	g.grid = NewGrid(g.cfg.Size, g.minRadius)
	g.points = []Point{}
	g.active = []int{}
	g.exhausted = false
	g.attempts = 0
}

// Points returns a copy of all accepted points in the order they were made.
func (g *Generator) Points() []Point {
	return append([]Point(nil), g.points...)
}

// Count returns the number of accepted points.
func (g *Generator) Count() int {
	return len(g.points)
}

// ActiveCount returns how many accepted points may still seed candidates.
func (g *Generator) ActiveCount() int {
	return len(g.active)
}

// Attempts returns the number of candidates evaluated since the last Reset.
func (g *Generator) Attempts() int {
	return g.attempts
}

// Grid returns the acceleration grid currently in use.
func (g *Generator) Grid() *Grid {
	return g.grid
}

// State returns the current run state.
func (g *Generator) State() State {
	if len(g.points) >= g.cfg.TargetCount {
		return Complete
	} else if g.exhausted {
		return Exhausted
	}
	return Seeded
}

// Next attempts to place a point with the given radius.
//
// On success the point is returned with ok = true. `finished` reports that no
// further calls will produce points; either we've reached the target count
// or the active list has drained. Once finished every call returns
// (Point{}, false, true, nil) without changing anything, whatever the radius.
//
// Otherwise a radius that is not positive & finite returns ErrInvalidRadius
// and leaves the generator as it was.
func (g *Generator) Next(radius float64) (pt Point, ok bool, finished bool, err error) {
	if g.State() != Seeded {
		return Point{}, false, true, nil
	}
	if !positive(radius) {
		return Point{}, false, false, ErrInvalidRadius
	}

	g.fitRadius(radius)

	if len(g.points) == 0 {
		return g.seed(radius)
	}

	for pass := 0; pass < g.cfg.PointTries && len(g.active) > 0; pass++ {
		sweep := append([]int(nil), g.active...)
		failed := map[int]bool{}

		for len(sweep) > 0 {
			si := g.rng.Intn(len(sweep))
			idx := sweep[si]
			essentials.UnorderedDelete(&sweep, si)

			around := g.points[idx]
			for i := 0; i < g.cfg.RejectionSamples; i++ {
				c := g.candidate(around, radius)
				if g.valid(c) {
					g.retire(failed)
					return g.accept(c)
				}
			}

			// this point has had its chance, don't pick it again
			failed[idx] = true
		}

		g.retire(failed)
	}

	if len(g.active) > 0 {
		// pass budget spent with points still active; the caller may try again
		return Point{}, false, false, nil
	}

	g.exhausted = true
	return Point{}, false, true, nil
}

// retire removes the given point indexes from the active list, keeping the
// order of those that remain.
func (g *Generator) retire(failed map[int]bool) {
	if len(failed) == 0 {
		return
	}
	kept := g.active[:0]
	for _, idx := range g.active {
		if !failed[idx] {
			kept = append(kept, idx)
		}
	}
	g.active = kept
}

// seed places the first point. We try the start offset itself & failing
// that sample around it as though it were an active point with no radius.
func (g *Generator) seed(radius float64) (Point, bool, bool, error) {
	first := Point{Position: g.start.Position, Radius: radius}
	if g.valid(first) {
		return g.accept(first)
	}

	for try := 0; try < g.cfg.PointTries; try++ {
		for i := 0; i < g.cfg.RejectionSamples; i++ {
			c := g.candidate(g.start, radius)
			if g.valid(c) {
				return g.accept(c)
			}
		}
	}

	g.exhausted = true
	return Point{}, false, true, nil
}

// accept records c in the grid, the point list & the active list.
// The grid is written first so a failure leaves nothing half done.
func (g *Generator) accept(c Point) (Point, bool, bool, error) {
	idx := len(g.points)
	if err := g.grid.Insert(c, idx); err != nil {
		return Point{}, false, false, err
	}

	g.points = append(g.points, c)
	g.active = append(g.active, idx)

	return c, true, len(g.points) >= g.cfg.TargetCount, nil
}

// fitRadius widens the generator's radius bounds if `radius` falls outside
// of them. A smaller radius than the grid was built for means rebuilding
// the grid with smaller cells, since a cell may hold only one point.
func (g *Generator) fitRadius(radius float64) {
	g.maxRadius = math.Max(g.maxRadius, radius)
	if radius >= g.minRadius {
		return
	}

	g.minRadius = radius
	g.grid = NewGrid(g.cfg.Size, radius)
	for i, p := range g.points {
		// every accepted point passed the region check, so this can't fail
		_ = g.grid.Insert(p, i)
	}
}
