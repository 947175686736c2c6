package scatter

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model2d"
)

func testConfig() *Config {
	return &Config{
		Size:         model2d.Coord{X: 100, Y: 100},
		ObjectsCount: 40,
		Seed:         42,
	}
}

func testCollection() Collection {
	return Collection{
		{Name: "tree", Radius: 2, Probability: 2},
		{Name: "rock", Radius: 1},
		{Name: "clearing", Radius: 3, Empty: true},
	}
}

type halfOutline struct{}

func (h *halfOutline) CanPlace(x, y, radius float64) bool {
	return x-radius >= 50
}

func requireValidPlacement(t *testing.T, s *Scatter, c Collection) {
	t.Helper()
	size := s.Config().Size

	for i, p := range s.Objects {
		require.True(t, p.Index >= 0 && p.Index < len(c))
		obj := c[p.Index]
		assert.Equal(t, obj.Radius, p.Radius)
		assert.Equal(t, obj.Name, p.Name)
		assert.Equal(t, obj.Empty, p.Empty)

		assert.True(t, p.Position.X-p.Radius >= 0 && p.Position.X+p.Radius < size.X, "object %d x %v", i, p.Position)
		assert.True(t, p.Position.Y-p.Radius >= 0 && p.Position.Y+p.Radius < size.Y, "object %d y %v", i, p.Position)

		for j := i + 1; j < len(s.Objects); j++ {
			o := s.Objects[j]
			dist := p.Position.Dist(o.Position)
			assert.True(t, dist >= p.Radius+o.Radius-1e-9, "objects %d & %d overlap", i, j)
		}
	}
}

func TestNew(t *testing.T) {
	c := testCollection()

	s, err := New(testConfig(), c, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Seed)
	assert.True(t, len(s.Objects) > 1)
	assert.True(t, len(s.Objects) <= 40)
	assert.Equal(t, len(s.Objects), s.Stats.Placed)
	assert.Equal(t, 40, s.Stats.Requested)
	assert.Equal(t, len(s.Objects) < 40, s.Stats.Exhausted)
	assert.True(t, s.Stats.Attempts >= len(s.Objects))
	assert.Len(t, s.Points(), len(s.Objects))

	requireValidPlacement(t, s, c)
}

func TestNewFirstAtCentre(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, s.Objects)

	assert.Equal(t, model2d.Coord{X: 50, Y: 50}, s.Objects[0].Position)
}

func TestNewStartOffset(t *testing.T) {
	cfg := testConfig()
	cfg.StartOffset = &model2d.Coord{X: 20, Y: 70}

	s, err := New(cfg, testCollection(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, s.Objects)

	assert.Equal(t, model2d.Coord{X: 20, Y: 70}, s.Objects[0].Position)
}

func TestNewSpacious(t *testing.T) {
	cfg := testConfig()
	cfg.Size = model2d.Coord{X: 500, Y: 500}
	cfg.ObjectsCount = 10

	s, err := New(cfg, testCollection(), nil)
	require.NoError(t, err)

	assert.Len(t, s.Objects, 10)
	assert.False(t, s.Stats.Exhausted)
}

func TestNewDeterministic(t *testing.T) {
	a, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)

	b, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Objects, b.Objects)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestNewDoesNotAlterConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0

	s, err := New(cfg, testCollection(), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0, cfg.RejectionSamplesThreshold)
	assert.NotEqual(t, int64(0), s.Seed)
	assert.Equal(t, DefaultRejectionSamples, s.Config().RejectionSamplesThreshold)
	assert.Equal(t, DefaultPointTries, s.Config().PointTriesThreshold)
}

func TestNewErrors(t *testing.T) {
	cases := map[string]struct {
		Cfg        *Config
		Collection Collection
		Expect     error
	}{
		"nil config": {
			Collection: testCollection(),
			Expect:     ErrInvalidConfig,
		},
		"empty collection": {
			Cfg:        testConfig(),
			Collection: Collection{},
			Expect:     ErrEmptyCollection,
		},
		"zero radius": {
			Cfg:        testConfig(),
			Collection: Collection{{Name: "a", Radius: 1}, {Name: "b"}},
			Expect:     ErrInvalidObject,
		},
		"nil object": {
			Cfg:        testConfig(),
			Collection: Collection{nil},
			Expect:     ErrInvalidObject,
		},
		"zero size": {
			Cfg:        &Config{ObjectsCount: 10, Seed: 1},
			Collection: testCollection(),
			Expect:     ErrInvalidConfig,
		},
		"zero objects": {
			Cfg:        &Config{Size: model2d.Coord{X: 10, Y: 10}, Seed: 1},
			Collection: testCollection(),
			Expect:     ErrInvalidConfig,
		},
		"start outside": {
			Cfg: &Config{
				Size:         model2d.Coord{X: 10, Y: 10},
				StartOffset:  &model2d.Coord{X: 11, Y: 5},
				ObjectsCount: 10,
				Seed:         1,
			},
			Collection: testCollection(),
			Expect:     ErrInvalidConfig,
		},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.Cfg, tt.Collection, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.Expect), "got %v", err)
		})
	}
}

func TestNewStrict(t *testing.T) {
	// only the centre fits a radius 2 object in a 5x5 area
	cfg := &Config{
		Size:         model2d.Coord{X: 5, Y: 5},
		ObjectsCount: 10,
		Seed:         7,
	}
	c := Collection{{Name: "boulder", Radius: 2}}

	s, err := New(cfg, c, nil)
	require.NoError(t, err)
	assert.Len(t, s.Objects, 1)
	assert.True(t, s.Stats.Exhausted)

	cfg.Strict = true
	s, err = New(cfg, c, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetNotMet))
	require.NotNil(t, s)
	assert.Len(t, s.Objects, 1)
}

func TestNewOutline(t *testing.T) {
	c := testCollection()

	s, err := New(testConfig(), c, &halfOutline{})
	require.NoError(t, err)
	require.NotEmpty(t, s.Objects)

	for _, p := range s.Objects {
		assert.True(t, p.Position.X-p.Radius >= 50, "object at %v", p.Position)
	}
	requireValidPlacement(t, s, c)
}

func TestNewRandomRotation(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)
	for _, p := range s.Objects {
		assert.Equal(t, 0.0, p.Rotation)
	}

	cfg := testConfig()
	cfg.RandomRotation = true
	s, err = New(cfg, testCollection(), nil)
	require.NoError(t, err)

	nonZero := 0
	for _, p := range s.Objects {
		assert.True(t, p.Rotation >= -math.Pi && p.Rotation < math.Pi)
		if p.Rotation != 0 {
			nonZero++
		}
	}
	assert.True(t, nonZero > 0)
}

func TestRegenerate(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)
	first := s.Objects

	require.NoError(t, s.Regenerate(1234))
	assert.Equal(t, int64(1234), s.Seed)
	assert.NotEqual(t, first, s.Objects)
	assert.Equal(t, len(s.Objects), s.Stats.Placed)

	require.NoError(t, s.Regenerate(42))
	assert.Equal(t, first, s.Objects)
}

func TestVisible(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)

	visible := s.Visible()
	assert.Len(t, visible, s.Stats.Placed-s.Stats.Empty)
	for _, p := range visible {
		assert.False(t, p.Empty)
	}
}

func TestStatsByName(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)

	total := 0
	for _, count := range s.Stats.ByName {
		total += count
	}
	assert.Equal(t, s.Stats.Placed, total)
	assert.Equal(t, s.Stats.ByName["clearing"], s.Stats.Empty)

	if s.Stats.Placed > 1 {
		assert.True(t, s.Stats.MinNearest > 0)
		assert.True(t, s.Stats.MeanNearest >= s.Stats.MinNearest)
	}
}

func TestJSON(t *testing.T) {
	s, err := New(testConfig(), testCollection(), nil)
	require.NoError(t, err)

	data, err := s.JSON()
	require.NoError(t, err)

	decoded := struct {
		Objects []*Placed
		Stats   *Stats
		Seed    int64
	}{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, s.Seed, decoded.Seed)
	assert.Len(t, decoded.Objects, len(s.Objects))
	assert.Equal(t, s.Stats.Placed, decoded.Stats.Placed)
}

func TestChooseObject(t *testing.T) {
	s := &Scatter{
		collection: Collection{
			{Name: "common", Radius: 1, Probability: 3},
			{Name: "rare", Radius: 1, Probability: 1},
		},
		rng:   rand.New(rand.NewSource(99)),
		total: 4,
	}

	counts := map[int]int{}
	for i := 0; i < 10000; i++ {
		counts[s.chooseObject()]++
	}

	assert.Len(t, counts, 2)
	assert.InDelta(t, 0.75, float64(counts[0])/10000, 0.03)
}

func TestNewFillsArea(t *testing.T) {
	cfg := &Config{
		Size:         model2d.Coord{X: 60, Y: 60},
		ObjectsCount: 100000,
		Seed:         3,
	}
	c := Collection{{Name: "stone", Radius: 1}}

	s, err := New(cfg, c, nil)
	require.NoError(t, err)

	assert.True(t, s.Stats.Exhausted)
	// a saturated r=1 fill of 60x60 holds ~530 discs
	assert.Greater(t, s.Stats.Placed, 470)
	requireValidPlacement(t, s, c)
}
