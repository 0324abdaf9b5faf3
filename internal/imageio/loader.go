// Package imageio is the disk collaborator for the compositor: it decodes
// input images, inspects their metadata, and encodes the finished output.
//
// Decoding is format-open (PNG, JPEG, GIF and BMP are registered); only the
// output side is restricted, to JPEG and PNG, by extension. All functions
// return wrapped errors and never terminate the process.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // Register BMP format decoder

	"github.com/inkstamp/inkstamp/internal/compose"
)

// Load opens and decodes a single image from disk.
//
// The decoded image's concrete type depends on the file format and color
// model (e.g. *image.NRGBA for PNG with alpha, *image.YCbCr for JPEG).
// A missing file surfaces as a wrapped os.ErrNotExist, so callers can test
// for it with errors.Is.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the detected on-disk format, by extension: "png", "jpeg",
	// "gif", "bmp", or "unknown".
	Format string

	// ColorComponents is the number of color channels (alpha excluded).
	ColorComponents int

	// BitsPerPixel is the total storage depth per pixel.
	BitsPerPixel int

	// HasAlpha indicates whether the image carries an alpha channel.
	HasAlpha bool

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64
}

// Describe returns metadata for an already-decoded image.
//
// The format name is determined by file extension, not file contents, which
// matches how the output side later chooses its encoder.
func Describe(path string, img image.Image) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	}

	pf := compose.FormatOf(img)
	bounds := img.Bounds()
	return &Info{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          format,
		ColorComponents: pf.ColorComponents,
		BitsPerPixel:    pf.BitsPerPixel,
		HasAlpha:        pf.HasAlpha(),
		FileSizeBytes:   stat.Size(),
	}, nil
}
