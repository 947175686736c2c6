package poisson

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// CandidateFilter accepts or rejects a candidate purely on its own position
// & radius. Filters run after the region check & before the (more expensive)
// neighbour search.
type CandidateFilter func(p Point) bool

// Config holds everything needed to set up a Generator. All fields are
// required unless noted.
type Config struct {
	// TargetCount is the number of points after which the generator
	// reports itself Complete.
	TargetCount int

	// Size of the sample region, the region spans [0, Size.X) x [0, Size.Y).
	Size model2d.Coord

	// StartOffset is where sampling begins.
	// Optional, the centre of the region is used if not given.
	StartOffset *model2d.Coord

	// MinRadius & MaxRadius bound the radii that will be passed to Next.
	// MinRadius sizes the grid cells, MaxRadius the neighbour search.
	MinRadius float64
	MaxRadius float64

	// RejectionSamples is the number of candidates made around a single
	// active point before it is retired. Typically 20-30.
	RejectionSamples int

	// PointTries bounds how many passes over the active list a single call
	// may make. A pass tries every point active at its start once, in random
	// order, retiring those that fail. The generator is only exhausted once
	// the active list is empty.
	PointTries int

	// Filters are optional extra rules a candidate must pass.
	Filters []CandidateFilter
}

// validate fails on any setting we would otherwise have to guess at.
// Nothing is clamped.
func (c *Config) validate() error {
	if c.TargetCount <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "target count %d must be > 0", c.TargetCount)
	}
	if !positive(c.Size.X) || !positive(c.Size.Y) {
		return errors.Wrapf(ErrInvalidConfig, "region size %v must be > 0 on both axes", c.Size)
	}
	if !positive(c.MinRadius) || !positive(c.MaxRadius) {
		return errors.Wrapf(ErrInvalidConfig, "radius bounds [%v, %v] must be > 0", c.MinRadius, c.MaxRadius)
	}
	if c.MinRadius > c.MaxRadius {
		return errors.Wrapf(ErrInvalidConfig, "min radius %v exceeds max radius %v", c.MinRadius, c.MaxRadius)
	}
	if c.RejectionSamples <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "rejection samples %d must be > 0", c.RejectionSamples)
	}
	if c.PointTries <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "point tries %d must be > 0", c.PointTries)
	}
	if c.StartOffset != nil {
		s := *c.StartOffset
		if !(s.X >= 0 && s.X < c.Size.X && s.Y >= 0 && s.Y < c.Size.Y) {
			return errors.Wrapf(ErrInvalidConfig, "start offset %v lies outside region %v", s, c.Size)
		}
	}
	return nil
}

// start returns where sampling begins
func (c *Config) start() model2d.Coord {
	if c.StartOffset != nil {
		return *c.StartOffset
	}
	return model2d.Coord{X: c.Size.X / 2, Y: c.Size.Y / 2}
}

// positive returns if v is a finite number > 0 (NaN is rejected).
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
