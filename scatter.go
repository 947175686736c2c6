package scatter

import (
	"encoding/json"
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/voidshard/scatter/poisson"
)

var (
	// ErrInvalidConfig implies the Config can't describe a placement run,
	// ie. a zero size area or a start offset outside of it.
	ErrInvalidConfig = poisson.ErrInvalidConfig

	// ErrEmptyCollection means there is nothing to place.
	ErrEmptyCollection = errors.New("spawn collection is empty")

	// ErrInvalidObject means an object in the collection can't be placed,
	// generally because it has no radius.
	ErrInvalidObject = errors.New("invalid spawn object")

	// ErrTargetNotMet is returned in Strict mode when the area filled up
	// before ObjectsCount objects were placed.
	ErrTargetNotMet = errors.New("failed to place desired number of objects")
)

// Scatter holds the result of a placement run.
type Scatter struct {
	cfg        *Config
	collection SpawnCollection
	outline    Outline

	rng *rand.Rand
	gen *poisson.Generator

	// radius bounds & summed weights of the collection
	minRadius float64
	maxRadius float64
	total     float64

	Objects []*Placed
	Stats   *Stats
	Seed    int64
}

// New scatters objects from the collection over the configured area.
// The outline is optional.
func New(cfg *Config, c SpawnCollection, o Outline) (*Scatter, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "config is nil")
	}
	conf := *cfg // we fill in defaults, don't change the callers copy

	s := &Scatter{
		cfg:        &conf,
		collection: c,
		outline:    o,
	}
	return s, s.build()
}

// Regenerate throws away the current placement & runs again with the given
// seed. A seed of 0 picks a new random seed.
func (s *Scatter) Regenerate(seed int64) error {
	s.cfg.Seed = seed
	return s.build()
}

// JSON returns the scatter as json.
func (s *Scatter) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// Config returns the config in use, with defaults filled in.
func (s *Scatter) Config() Config {
	return *s.cfg
}

// Points returns the placed footprints in the order they were placed.
func (s *Scatter) Points() []poisson.Point {
	if s.gen == nil {
		return nil
	}
	return s.gen.Points()
}

// Visible returns placed objects that are not Empty.
func (s *Scatter) Visible() []*Placed {
	out := []*Placed{}
	for _, p := range s.Objects {
		if !p.Empty {
			out = append(out, p)
		}
	}
	return out
}

// build runs a full placement, replacing any previous result.
func (s *Scatter) build() error {
	err := s.init()
	if err != nil {
		return err
	}

	log := Logger().With("seed", s.Seed)
	log.Debug("placement started",
		"objects", s.cfg.ObjectsCount,
		"size", s.cfg.Size,
		"min_radius", s.minRadius,
		"max_radius", s.maxRadius,
	)

	// keep asking for points until the generator tells us it's done.
	// Every call that places nothing retires at least one active point,
	// so this always ends.
	for {
		idx := s.chooseObject()
		obj := s.collection.ObjectAt(idx)

		pt, ok, finished, err := s.gen.Next(obj.Radius)
		if err != nil {
			return errors.Wrapf(err, "failed placing object %d (%s)", idx, obj.Name)
		}
		if ok {
			s.addPlaced(idx, obj, pt)
		}
		if finished {
			break
		}
	}

	s.Stats.Attempts = s.gen.Attempts()
	s.Stats.Exhausted = s.gen.State() == poisson.Exhausted
	s.Stats.measureSpacing(s.Objects)

	if s.Stats.Exhausted {
		log.Debug("area exhausted", "placed", s.Stats.Placed, "requested", s.Stats.Requested)
	}
	log.Info("placement finished",
		"placed", s.Stats.Placed,
		"requested", s.Stats.Requested,
		"attempts", s.Stats.Attempts,
		"mean_nearest", s.Stats.MeanNearest,
	)

	if s.cfg.Strict && s.Stats.Placed < s.Stats.Requested {
		return errors.Wrapf(ErrTargetNotMet, "placed %d of %d", s.Stats.Placed, s.Stats.Requested)
	}
	return nil
}

// addPlaced records a successful placement of the idx-th object
func (s *Scatter) addPlaced(idx int, obj *SpawnObject, pt poisson.Point) {
	p := &Placed{
		Index:    idx,
		Name:     obj.Name,
		Position: pt.Position,
		Radius:   pt.Radius,
		Empty:    obj.Empty,
	}
	if s.cfg.RandomRotation {
		p.Rotation = randf(s.rng, -math.Pi, math.Pi)
	}

	s.Objects = append(s.Objects, p)
	s.Stats.add(p)
}

// chooseObject returns the index of an object at random, taking into
// account object probabilities.
func (s *Scatter) chooseObject() int {
	rv := s.rng.Float64()
	sofar := 0.0

	n := s.collection.Len()
	for i := 0; i < n; i++ {
		prob := s.collection.ObjectAt(i).weight() / s.total // normalised
		if rv <= prob+sofar {
			return i
		}
		sofar += prob
	}

	// float rounding can leave rv a hair above the final sum
	return n - 1
}

// init validates our inputs & sets up a fresh generator.
func (s *Scatter) init() error {
	s.cfg.fillDefaults()
	s.Seed = s.cfg.Seed
	s.rng = rand.New(rand.NewSource(s.cfg.Seed/2 + 1))

	minRadius, maxRadius, err := RadiusBounds(s.collection)
	if err != nil {
		return err
	}
	s.minRadius, s.maxRadius = minRadius, maxRadius

	s.total = 0
	for i := 0; i < s.collection.Len(); i++ {
		s.total += s.collection.ObjectAt(i).weight()
	}

	pcfg := poisson.Config{
		TargetCount:      s.cfg.ObjectsCount,
		Size:             s.cfg.Size,
		StartOffset:      s.cfg.StartOffset,
		MinRadius:        minRadius,
		MaxRadius:        maxRadius,
		RejectionSamples: s.cfg.RejectionSamplesThreshold,
		PointTries:       s.cfg.PointTriesThreshold,
	}
	if s.outline != nil {
		pcfg.Filters = append(pcfg.Filters, func(p poisson.Point) bool {
			return s.outline.CanPlace(p.Position.X, p.Position.Y, p.Radius)
		})
	}

	s.gen, err = poisson.NewGenerator(pcfg, rand.New(rand.NewSource(s.cfg.Seed)))
	if err != nil {
		return err
	}

	s.Objects = []*Placed{}
	s.Stats = newStats(s.cfg.ObjectsCount)

	return nil
}
