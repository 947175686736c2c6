// Package poisson implements variable radius Poisson-disc sampling over a
// rectangular region.
//
// Unlike the classic algorithm every point carries its own radius, supplied
// by the caller one point at a time. Points never overlap: the distance
// between any two accepted points is at least the sum of their radii.
//
//	g, err := poisson.NewGenerator(poisson.Config{
//		TargetCount:      100,
//		Size:             model2d.Coord{X: 50, Y: 50},
//		MinRadius:        0.5,
//		MaxRadius:        2,
//		RejectionSamples: 30,
//		PointTries:       7,
//	}, rand.New(rand.NewSource(1)))
//
//	for {
//		p, ok, finished, err := g.Next(radiusOfNextThing())
//		...
//	}
package poisson
