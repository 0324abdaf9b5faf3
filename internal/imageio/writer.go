package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when the caller does not override the encoder
// quality.
const DefaultJPEGQuality = 95

// OutputExtensionError reports an output filename whose extension is not one
// of the supported encoders. Only .jpg/.jpeg and .png are accepted.
type OutputExtensionError struct {
	Ext string
}

func (e *OutputExtensionError) Error() string {
	if e.Ext == "" {
		return "output filename has no extension; use .jpg or .png"
	}
	return fmt.Sprintf("unsupported output extension %q; use .jpg or .png", e.Ext)
}

// ResolveFormat maps an output path to its encoder format by extension,
// case-insensitively. Anything other than .jpg, .jpeg or .png fails with an
// OutputExtensionError. Callers are expected to resolve the format before
// compositing so a bad output path fails the run up front.
func ResolveFormat(path string) (imaging.Format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return imaging.JPEG, nil
	case ".png":
		return imaging.PNG, nil
	default:
		return 0, &OutputExtensionError{Ext: ext}
	}
}

// Save encodes the image to disk in the given format. JPEG output uses the
// provided quality (1-100); the quality option is ignored for PNG.
func Save(img image.Image, path string, format imaging.Format, jpegQuality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode output image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
