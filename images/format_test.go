package images

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected ImageFormat
	}{
		{"icon.png", FormatPNG},
		{"dir/photo.jpg", FormatJPEG},
		{"photo.JPEG", FormatJPEG},
		{"anim.gif", FormatGIF},
		{"legacy.bmp", FormatBMP},
		{"scan.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
		{"modern.WebP", FormatWebP},
		{"archive.tar.png", FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatFromPathUnsupported(t *testing.T) {
	for _, path := range []string{"notes.txt", "noext", "image.png.bak", ""} {
		format, err := FormatFromPath(path)
		assert.Error(t, err, path)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), path)
		assert.Empty(t, format)
	}
}

func TestSupportsAlpha(t *testing.T) {
	assert.True(t, FormatPNG.SupportsAlpha())
	assert.True(t, FormatWebP.SupportsAlpha())
	assert.True(t, FormatTIFF.SupportsAlpha())
	assert.False(t, FormatJPEG.SupportsAlpha())
	assert.False(t, FormatGIF.SupportsAlpha())
	assert.False(t, FormatBMP.SupportsAlpha())
	assert.False(t, ImageFormat("heic").SupportsAlpha())
}
