package compose

import "image"

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. Alpha is deliberately absent: the
// color key comparison and the output buffer both ignore transparency.
type RGBColor struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// PixelFormat describes the storage layout of a decoded image as the
// compositor classifies it: the number of color components and the total
// bits per pixel.
type PixelFormat struct {
	ColorComponents int
	BitsPerPixel    int
}

// FormatOf derives the PixelFormat of a decoded image from its concrete Go
// image type.
//
// Classification:
//   - 8-bit types with an alpha channel (*image.RGBA, *image.NRGBA) -> 3
//     components, 32 bits/pixel
//   - 8-bit color types without alpha (*image.YCbCr and anything else not
//     listed below) -> 3 components, 24 bits/pixel
//   - paletted images -> 32 bits/pixel when any palette entry is not fully
//     opaque, 24 otherwise
//   - grayscale -> 1 component; CMYK -> 4 components; 16-bit-per-channel
//     types keep their wide depth
//
// Only 3-component formats at 24 or 32 bits/pixel pass ValidateFormat.
func FormatOf(img image.Image) PixelFormat {
	switch im := img.(type) {
	case *image.RGBA, *image.NRGBA:
		return PixelFormat{ColorComponents: 3, BitsPerPixel: 32}
	case *image.RGBA64, *image.NRGBA64:
		return PixelFormat{ColorComponents: 3, BitsPerPixel: 64}
	case *image.Gray:
		return PixelFormat{ColorComponents: 1, BitsPerPixel: 8}
	case *image.Gray16:
		return PixelFormat{ColorComponents: 1, BitsPerPixel: 16}
	case *image.CMYK:
		return PixelFormat{ColorComponents: 4, BitsPerPixel: 32}
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return PixelFormat{ColorComponents: 3, BitsPerPixel: 32}
			}
		}
		return PixelFormat{ColorComponents: 3, BitsPerPixel: 24}
	default:
		return PixelFormat{ColorComponents: 3, BitsPerPixel: 24}
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	return f.ColorComponents == 3 && f.BitsPerPixel == 32
}

// AlphaClass describes how a watermark actually uses its alpha channel.
type AlphaClass int

const (
	// AlphaOpaque: every pixel is fully opaque (or the format has no alpha).
	AlphaOpaque AlphaClass = iota
	// AlphaBinary: alpha is a bitmask, only 0 and 255 occur and at least one
	// pixel is fully transparent.
	AlphaBinary
	// AlphaTranslucent: at least one pixel has a partial alpha value.
	AlphaTranslucent
)

// String returns a human-readable name for the class.
func (c AlphaClass) String() string {
	switch c {
	case AlphaBinary:
		return "binary"
	case AlphaTranslucent:
		return "translucent"
	default:
		return "opaque"
	}
}

// UsesTransparency reports whether the alpha channel carries any information
// worth honoring, i.e. the class is not AlphaOpaque.
func (c AlphaClass) UsesTransparency() bool {
	return c != AlphaOpaque
}

// ClassifyAlpha scans an image's alpha channel and classifies its use.
//
// Images whose format carries no alpha channel are AlphaOpaque without a
// scan. The scan short-circuits on the first partial alpha value.
func ClassifyAlpha(img image.Image) AlphaClass {
	if !FormatOf(img).HasAlpha() {
		return AlphaOpaque
	}

	bounds := img.Bounds()
	sawTransparent := false
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			switch a >> 8 {
			case 255:
			case 0:
				sawTransparent = true
			default:
				return AlphaTranslucent
			}
		}
	}
	if sawTransparent {
		return AlphaBinary
	}
	return AlphaOpaque
}
