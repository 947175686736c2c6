package scatter

// Outline tells scatter whether a location is usable at all, beyond the
// object staying inside the area. Ie. no trees in the lake.
type Outline interface {
	// true if an object of the given radius may sit at x,y
	CanPlace(x, y, radius float64) bool
}

// SpawnCollection is an ordered set of things we can place.
// Scatter only needs to know how large each one is.
type SpawnCollection interface {
	// number of objects to choose from
	Len() int

	// object at index i, 0 <= i < Len()
	ObjectAt(i int) *SpawnObject
}
