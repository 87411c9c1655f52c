package images

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// ErrUnsupportedFormat is returned when a file extension does not map to a known format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var extensionFormats = map[string]ImageFormat{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// FormatFromPath returns the image format implied by the extension of path.
// The match is case-insensitive.
//
// Arguments:
//   - path: A file path such as "assets/icon.PNG".
//
// Returns:
//   - ImageFormat: The matching format.
//   - error: ErrUnsupportedFormat (wrapped) if the extension is missing or unknown.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensionFormats[ext]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
	return format, nil
}

// imagingFormat maps a format onto the imaging package's encoder enum.
// WebP has no imaging encoder and reports false.
func (f ImageFormat) imagingFormat() (imaging.Format, bool) {
	switch f {
	case FormatJPEG:
		return imaging.JPEG, true
	case FormatPNG:
		return imaging.PNG, true
	case FormatGIF:
		return imaging.GIF, true
	case FormatBMP:
		return imaging.BMP, true
	case FormatTIFF:
		return imaging.TIFF, true
	default:
		return 0, false
	}
}

// SupportsAlpha reports whether the format can store a transparent canvas
// without flattening it. GIF is quantized to an opaque palette and BMP alpha
// does not survive a round trip through the decoders.
func (f ImageFormat) SupportsAlpha() bool {
	switch f {
	case FormatPNG, FormatWebP, FormatTIFF:
		return true
	default:
		return false
	}
}
