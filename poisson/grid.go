package poisson

import (
	"iter"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// Grid is a uniform acceleration grid over the sample region.
//
// Each cell is either empty or holds the index of exactly one accepted point.
// Occupancy is tracked in a bitmap so that index 0 is an ordinary value rather
// than an "empty" marker.
type Grid struct {
	cellSize    float64
	cellSizeInv float64

	width  int
	height int

	occupied bitmap.Bitmap
	index    []int
}

// NewGrid returns an empty grid covering `size` with square cells of
// minRadius / √2, so no two non-overlapping discs share a cell.
func NewGrid(size model2d.Coord, minRadius float64) *Grid {
	cellSize := minRadius / math.Sqrt2
	w := maxint(1, int(math.Ceil(size.X/cellSize)))
	h := maxint(1, int(math.Ceil(size.Y/cellSize)))

	return &Grid{
		cellSize:    cellSize,
		cellSizeInv: 1 / cellSize,
		width:       w,
		height:      h,
		occupied:    bitmap.New(w * h),
		index:       make([]int, w*h),
	}
}

// CellSize returns the side length of a single cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Dimensions returns the number of cells along x and y.
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// Cell returns the cell co-ords for the given position. The result may lie
// outside of the grid.
func (g *Grid) Cell(pos model2d.Coord) (int, int) {
	return int(math.Floor(pos.X * g.cellSizeInv)), int(math.Floor(pos.Y * g.cellSizeInv))
}

// At returns the point index stored at cell (x, y), if any.
func (g *Grid) At(x, y int) (int, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	i := y*g.width + x
	if !g.occupied.Get(i) {
		return 0, false
	}
	return g.index[i], true
}

// Insert records `index` at the cell containing p.
// Callers are expected to have checked p lies inside the region first; a
// position outside of the grid is a programming error.
func (g *Grid) Insert(p Point, index int) error {
	x, y := g.Cell(p.Position)
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfGrid, "cell (%d,%d) for %v", x, y, p.Position)
	}
	i := y*g.width + x
	g.occupied.Set(i, true)
	g.index[i] = index
	return nil
}

// Neighbours yields the index of every point recorded within `halfWidth`
// cells of p's cell (a square window clamped to the grid).
func (g *Grid) Neighbours(p Point, halfWidth int) iter.Seq[int] {
	cx, cy := g.Cell(p.Position)

	startX := maxint(0, cx-halfWidth)
	endX := minint(cx+halfWidth, g.width-1)
	startY := maxint(0, cy-halfWidth)
	endY := minint(cy+halfWidth, g.height-1)

	return func(yield func(int) bool) {
		for y := startY; y <= endY; y++ {
			for x := startX; x <= endX; x++ {
				i := y*g.width + x
				if !g.occupied.Get(i) {
					continue
				}
				if !yield(g.index[i]) {
					return
				}
			}
		}
	}
}

// HalfWidth returns how many cells either side of a point must be searched
// to find every disc that could be within `dist` of it.
func (g *Grid) HalfWidth(dist float64) int {
	return int(math.Ceil(dist * g.cellSizeInv))
}

// inBounds returns if (x, y) is a valid cell
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
