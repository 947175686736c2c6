package scatter

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRejectionSamples is used when Config.RejectionSamplesThreshold is not set.
	DefaultRejectionSamples = 30

	// DefaultPointTries is used when Config.PointTriesThreshold is not set.
	DefaultPointTries = 7
)

// Config holds settings for a single placement run.
type Config struct {
	// Size of the area objects are scattered over, required.
	// The area spans (0,0) to Size.
	Size model2d.Coord `yaml:"size"`

	// StartOffset is where placement begins.
	// Centre of the area chosen if not given.
	StartOffset *model2d.Coord `yaml:"start_offset,omitempty"`

	// ObjectsCount is how many objects we'd like to place, required.
	// Nb. this is best-effort, we stop early if the area fills up.
	ObjectsCount int `yaml:"objects_count"`

	// Candidates made around a single object before we stop trying to
	// place things next to it. 30 if not set.
	RejectionSamplesThreshold int `yaml:"rejection_samples,omitempty"`

	// How many passes over the objects still able to seed new ones a
	// single attempt may make before handing back to us. 7 if not set.
	PointTriesThreshold int `yaml:"point_tries,omitempty"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `yaml:"seed,omitempty"`

	// RandomRotation gives each placed object a random heading
	RandomRotation bool `yaml:"random_rotation,omitempty"`

	// Strict makes New fail with ErrTargetNotMet if fewer than
	// ObjectsCount objects could be placed.
	Strict bool `yaml:"strict,omitempty"`
}

// File is the layout of a config file, see LoadConfig.
type File struct {
	Config  `yaml:",inline"`
	Objects Collection `yaml:"objects"`
}

// ReadConfig decodes a YAML config (settings + objects) from r.
func ReadConfig(r io.Reader) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return f, nil
}

// LoadConfig reads a YAML config file from disk.
func LoadConfig(fpath string) (*File, error) {
	fh, err := os.Open(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config %s", fpath)
	}
	defer fh.Close()
	return ReadConfig(fh)
}

// fillDefaults sets values that are optional. Invalid values are left for
// the generator to reject.
func (c *Config) fillDefaults() {
	if c.Seed == 0 {
		c.Seed = timeSeed()
	}
	if c.RejectionSamplesThreshold == 0 {
		c.RejectionSamplesThreshold = DefaultRejectionSamples
	}
	if c.PointTriesThreshold == 0 {
		c.PointTriesThreshold = DefaultPointTries
	}
}
