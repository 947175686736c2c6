package scatter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model2d"
)

func TestRadiusBounds(t *testing.T) {
	min, max, err := RadiusBounds(testCollection())
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 3.0, max)

	_, _, err = RadiusBounds(Collection{})
	assert.True(t, errors.Is(err, ErrEmptyCollection))

	_, _, err = RadiusBounds(nil)
	assert.True(t, errors.Is(err, ErrEmptyCollection))

	_, _, err = RadiusBounds(Collection{{Radius: -1}})
	assert.True(t, errors.Is(err, ErrInvalidObject))
}

func TestSpawnObjectWeight(t *testing.T) {
	assert.Equal(t, 1.0, (&SpawnObject{}).weight())
	assert.Equal(t, 1.0, (&SpawnObject{Probability: -2}).weight())
	assert.Equal(t, 0.25, (&SpawnObject{Probability: 0.25}).weight())
}

func TestStatsAdd(t *testing.T) {
	s := newStats(3)
	s.add(&Placed{Name: "a"})
	s.add(&Placed{Name: "a"})
	s.add(&Placed{Name: "gap", Empty: true})

	assert.Equal(t, 3, s.Requested)
	assert.Equal(t, 3, s.Placed)
	assert.Equal(t, 1, s.Empty)
	assert.Equal(t, map[string]int{"a": 2, "gap": 1}, s.ByName)
}

func TestStatsMeasureSpacing(t *testing.T) {
	s := newStats(3)
	s.measureSpacing([]*Placed{{Position: model2d.Coord{X: 1, Y: 1}}})
	assert.Equal(t, 0.0, s.MeanNearest)
	assert.Equal(t, 0.0, s.MinNearest)

	s.measureSpacing([]*Placed{
		{Position: model2d.Coord{X: 0, Y: 0}},
		{Position: model2d.Coord{X: 3, Y: 0}},
		{Position: model2d.Coord{X: 0, Y: 4}},
	})
	assert.InDelta(t, 10.0/3.0, s.MeanNearest, 1e-9)
	assert.InDelta(t, 3.0, s.MinNearest, 1e-9)
}
