package poisson

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is returned (wrapped) by NewGenerator when the given
	// Config cannot describe a sample region.
	ErrInvalidConfig = errors.New("invalid generator config")

	// ErrInvalidRadius is returned by Next for radii that are not positive & finite.
	// The generator is not modified.
	ErrInvalidRadius = errors.New("radius must be a positive finite number")

	// ErrOutOfGrid means a point was inserted outside of the grid. This implies
	// a containment check was skipped.
	ErrOutOfGrid = errors.New("position outside of acceleration grid")
)
