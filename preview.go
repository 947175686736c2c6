package scatter

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// ColourScheme defines how a preview of a Scatter is coloured.
type ColourScheme struct {
	Background color.Color
	Objects    color.Color
	Empty      color.Color // outline colour for space reserved by Empty objects
	Heading    color.Color // line showing rotation, if RandomRotation is set

	// ByName overrides Objects for objects with the given name
	ByName map[string]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Objects:    colornames.Steelblue,
		Empty:      colornames.Lightgray,
		Heading:    colornames.Black,
		ByName:     map[string]color.Color{},
	}
}

// colour returns the fill colour for p
func (c *ColourScheme) colour(p *Placed) color.Color {
	if col, ok := c.ByName[p.Name]; ok {
		return col
	}
	return c.Objects
}

// Image draws the placement area with every placed object as a disc of
// its radius. Scale is pixels per unit of area, 1 if not set.
func (s *Scatter) Image(scheme *ColourScheme, scale float64) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	if scale <= 0 {
		scale = 1
	}

	w := maxint(1, int(math.Ceil(s.cfg.Size.X*scale)))
	h := maxint(1, int(math.Ceil(s.cfg.Size.Y*scale)))

	ctx := gg.NewContext(w, h)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	for _, p := range s.Objects {
		x, y, r := p.Position.X*scale, p.Position.Y*scale, p.Radius*scale

		ctx.DrawCircle(x, y, r)
		if p.Empty {
			ctx.SetColor(scheme.Empty)
			ctx.SetLineWidth(1)
			ctx.Stroke()
			continue
		}
		ctx.SetColor(scheme.colour(p))
		ctx.Fill()

		if s.cfg.RandomRotation {
			ctx.SetColor(scheme.Heading)
			ctx.SetLineWidth(1)
			ctx.DrawLine(x, y, x+math.Cos(p.Rotation)*r, y+math.Sin(p.Rotation)*r)
			ctx.Stroke()
		}
	}

	return ctx.Image()
}

// SavePNG writes Image(scheme, scale) to disk.
func (s *Scatter) SavePNG(fpath string, scheme *ColourScheme, scale float64) error {
	return gg.SavePNG(fpath, s.Image(scheme, scale))
}
