package scatter

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// SpawnObject is something that can be placed.
type SpawnObject struct {
	// Name, purely informational. Placed objects carry it along.
	Name string `yaml:"name,omitempty" json:",omitempty"`

	// Radius of the footprint, required & > 0.
	// No two placed objects' footprints overlap.
	Radius float64 `yaml:"radius"`

	// Probability is the relative chance this object is chosen.
	// Values of 0 or less count as 1.
	Probability float64 `yaml:"probability,omitempty" json:",omitempty"`

	// Empty objects reserve space but aren't meant to be shown; they create
	// clearings between other objects.
	Empty bool `yaml:"empty,omitempty" json:",omitempty"`
}

// weight returns the relative probability of choosing this object
func (o *SpawnObject) weight() float64 {
	if o.Probability <= 0 {
		return 1
	}
	return o.Probability
}

// Collection is a simple SpawnCollection backed by a slice.
type Collection []*SpawnObject

// Len returns the number of objects
func (c Collection) Len() int {
	return len(c)
}

// ObjectAt returns the i-th object
func (c Collection) ObjectAt(i int) *SpawnObject {
	return c[i]
}

// RadiusBounds returns the smallest & largest radius in the collection.
// Every object must have a positive, finite radius.
func RadiusBounds(c SpawnCollection) (float64, float64, error) {
	if c == nil || c.Len() == 0 {
		return 0, 0, ErrEmptyCollection
	}

	minRadius := math.MaxFloat64
	maxRadius := 0.0

	for i := 0; i < c.Len(); i++ {
		obj := c.ObjectAt(i)
		if obj == nil {
			return 0, 0, errors.Wrapf(ErrInvalidObject, "object %d is nil", i)
		}
		if !(obj.Radius > 0) || math.IsInf(obj.Radius, 1) {
			return 0, 0, errors.Wrapf(ErrInvalidObject, "object %d (%s) has radius %v", i, obj.Name, obj.Radius)
		}
		minRadius = math.Min(minRadius, obj.Radius)
		maxRadius = math.Max(maxRadius, obj.Radius)
	}

	return minRadius, maxRadius, nil
}

// Placed is an object that has been given a position.
type Placed struct {
	// Index of the object in the SpawnCollection
	Index int

	// Name of the object (see SpawnObject.Name)
	Name string `json:",omitempty"`

	// Centre of the object
	Position model2d.Coord

	// Radius of the object's footprint
	Radius float64

	// Rotation about the centre in radians, [-Pi, Pi).
	// Only set if Config.RandomRotation
	Rotation float64 `json:",omitempty"`

	// true if the object only reserves space
	Empty bool `json:",omitempty"`
}

// Stats holds generic stats about a placement run
type Stats struct {
	// objects we were asked to place & those we managed to place
	Requested int
	Placed    int

	// how many of the placed objects are Empty
	Empty int `json:",omitempty"`

	// candidate positions evaluated
	Attempts int

	// true if we ran out of room before placing Requested objects
	Exhausted bool `json:",omitempty"`

	// count of placed objects by name
	ByName map[string]int `json:",omitempty"`

	// centre to centre distance from each object to its nearest neighbour,
	// averaged & the smallest seen
	MeanNearest float64 `json:",omitempty"`
	MinNearest  float64 `json:",omitempty"`
}

// newStats returns blank Stats
func newStats(requested int) *Stats {
	return &Stats{Requested: requested, ByName: map[string]int{}}
}

// add records a newly placed object
func (s *Stats) add(p *Placed) {
	s.Placed++
	if p.Empty {
		s.Empty++
	}
	s.ByName[p.Name]++
}

// measureSpacing fills in the nearest neighbour stats.
func (s *Stats) measureSpacing(placed []*Placed) {
	s.MeanNearest, s.MinNearest = 0, 0
	if len(placed) < 2 {
		return
	}

	coords := make([]model2d.Coord, len(placed))
	for i, p := range placed {
		coords[i] = p.Position
	}
	tree := model2d.NewCoordTree(coords)

	sum := 0.0
	smallest := math.Inf(1)
	for _, c := range coords {
		// one of the two results is c itself
		for _, n := range tree.KNN(2, c) {
			if n == c {
				continue
			}
			d := n.Dist(c)
			sum += d
			smallest = math.Min(smallest, d)
		}
	}

	s.MeanNearest = sum / float64(len(coords))
	s.MinNearest = smallest
}
