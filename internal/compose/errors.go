package compose

import "fmt"

// FormatError reports an image whose pixel layout the compositor cannot
// accept: anything other than 3 color components at 24 or 32 bits per pixel.
type FormatError struct {
	Label  string // which image failed, e.g. "base image"
	Format PixelFormat
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unsupported pixel format (%d color components, %d bits/pixel); need 3 components at 24 or 32 bits/pixel",
		e.Label, e.Format.ColorComponents, e.Format.BitsPerPixel)
}

// SizeError reports a watermark that exceeds the base image in at least one
// dimension.
type SizeError struct {
	BaseWidth, BaseHeight           int
	WatermarkWidth, WatermarkHeight int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("watermark %dx%d does not fit inside base image %dx%d",
		e.WatermarkWidth, e.WatermarkHeight, e.BaseWidth, e.BaseHeight)
}

// RangeError reports a numeric value outside its valid domain, such as a
// blend weight outside 0-100, a color channel outside 0-255, or a placement
// coordinate outside the computed bounds.
type RangeError struct {
	What     string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.What, e.Min, e.Max, e.Value)
}
