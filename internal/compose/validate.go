package compose

import "image"

// ValidateFormat checks that an image uses one of the two accepted pixel
// layouts: 3 color components at 24 or 32 bits per pixel. The label names
// the image in the returned FormatError (e.g. "base image", "watermark").
func ValidateFormat(img image.Image, label string) error {
	f := FormatOf(img)
	if f.ColorComponents != 3 || (f.BitsPerPixel != 24 && f.BitsPerPixel != 32) {
		return &FormatError{Label: label, Format: f}
	}
	return nil
}

// ValidateFit checks that the watermark fits inside the base image. Only the
// watermark-versus-base direction is checked: a base image larger than the
// watermark in both dimensions always passes.
func ValidateFit(base, watermark image.Image) error {
	bw, bh := base.Bounds().Dx(), base.Bounds().Dy()
	ww, wh := watermark.Bounds().Dx(), watermark.Bounds().Dy()
	if ww > bw || wh > bh {
		return &SizeError{
			BaseWidth:       bw,
			BaseHeight:      bh,
			WatermarkWidth:  ww,
			WatermarkHeight: wh,
		}
	}
	return nil
}
