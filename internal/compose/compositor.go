package compose

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// PlacementMode selects how the watermark is positioned on the base image.
type PlacementMode int

const (
	// PlaceSingle draws the watermark once at a fixed offset.
	PlaceSingle PlacementMode = iota
	// PlaceGrid tiles the watermark across the whole base image with
	// coordinate-modulo wraparound, no offset.
	PlaceGrid
)

// Placement is a validated watermark position. OriginX/OriginY are
// meaningful only for PlaceSingle.
type Placement struct {
	Mode             PlacementMode
	OriginX, OriginY int
}

// Grid returns the tiled placement.
func Grid() Placement {
	return Placement{Mode: PlaceGrid}
}

// NewSinglePlacement validates the origin against the base and watermark
// dimensions and returns a single placement. The watermark footprint must
// lie fully inside the base: 0 <= x <= baseW-wmW and 0 <= y <= baseH-wmH.
func NewSinglePlacement(x, y int, base, watermark image.Image) (Placement, error) {
	maxX := base.Bounds().Dx() - watermark.Bounds().Dx()
	maxY := base.Bounds().Dy() - watermark.Bounds().Dy()
	if x < 0 || x > maxX {
		return Placement{}, &RangeError{What: "x coordinate", Value: x, Min: 0, Max: maxX}
	}
	if y < 0 || y > maxY {
		return Placement{}, &RangeError{What: "y coordinate", Value: y, Min: 0, Max: maxY}
	}
	return Placement{Mode: PlaceSingle, OriginX: x, OriginY: y}, nil
}

// Options is the full compositing configuration, resolved once before the
// pass starts.
type Options struct {
	Policy    Policy
	Weight    BlendWeight
	Placement Placement
}

// Composite overlays the watermark onto the base image under the given
// options and returns a freshly allocated output image of the base image's
// dimensions. Every output pixel is fully opaque; watermark alpha is never
// persisted.
//
// The inputs are not modified. The pass has no cross-pixel dependency, so
// rows are processed in parallel with each worker writing a disjoint range
// of the output buffer.
func Composite(base, watermark image.Image, opts Options) *image.NRGBA {
	// Normalize both inputs to NRGBA once so the per-pixel loop reads raw
	// bytes instead of going through the color.Color interface.
	src := imaging.Clone(base)
	wm := imaging.Clone(watermark)

	width := src.Bounds().Dx()
	height := src.Bounds().Dy()
	wmWidth := wm.Bounds().Dx()
	wmHeight := wm.Bounds().Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	w := int(opts.Weight)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				i := src.NRGBAAt(x, y)

				wx, wy, covered := watermarkAt(x, y, opts.Placement, wmWidth, wmHeight)
				if !covered {
					dst.SetNRGBA(x, y, color.NRGBA{R: i.R, G: i.G, B: i.B, A: 255})
					continue
				}

				p := wm.NRGBAAt(wx, wy)
				if transparentUnder(opts.Policy, p) {
					dst.SetNRGBA(x, y, color.NRGBA{R: i.R, G: i.G, B: i.B, A: 255})
					continue
				}

				dst.SetNRGBA(x, y, color.NRGBA{
					R: blendChannel(w, p.R, i.R),
					G: blendChannel(w, p.G, i.G),
					B: blendChannel(w, p.B, i.B),
					A: 255,
				})
			}
		}
	})

	return dst
}

// watermarkAt maps a base coordinate to watermark-local coordinates under
// the placement, reporting whether the coordinate is covered at all.
func watermarkAt(x, y int, pl Placement, wmWidth, wmHeight int) (wx, wy int, covered bool) {
	switch pl.Mode {
	case PlaceGrid:
		return x % wmWidth, y % wmHeight, true
	default:
		if x < pl.OriginX || x >= pl.OriginX+wmWidth || y < pl.OriginY || y >= pl.OriginY+wmHeight {
			return 0, 0, false
		}
		return x - pl.OriginX, y - pl.OriginY, true
	}
}

// transparentUnder reports whether the policy deems a watermark pixel fully
// transparent. The color key comparison is exact and covers RGB only; alpha
// is ignored.
func transparentUnder(p Policy, w color.NRGBA) bool {
	switch p.Kind {
	case UseWatermarkAlpha:
		return w.A == 0
	case ColorKey:
		return w.R == p.Key.R && w.G == p.Key.G && w.B == p.Key.B
	default:
		return false
	}
}

// blendChannel mixes one watermark channel with one base channel. Integer
// division truncates toward zero.
func blendChannel(weight int, wm, base uint8) uint8 {
	return uint8((weight*int(wm) + (100-weight)*int(base)) / 100)
}
