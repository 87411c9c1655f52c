// Package images - Image codec and compositing primitives.
package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Codec is the imaging backend used by the padder. Implementations decode
// files, encode rasters, allocate canvases and paste one image onto another.
type Codec interface {
	// Decode reads and decodes the image file at path.
	Decode(path string) (image.Image, error)
	// Encode writes img to w in the given format.
	Encode(w io.Writer, img image.Image, format ImageFormat) error
	// NewCanvas allocates a width x height raster filled with fill.
	NewCanvas(width, height int, fill color.Color) *image.NRGBA
	// Paste copies src onto dst with its top-left corner at pt. The copy is an
	// overwrite: destination pixels under src are replaced, alpha included.
	// Callers must use the returned image; it may or may not alias dst.
	Paste(dst *image.NRGBA, src image.Image, pt image.Point) *image.NRGBA
}

// ImagingCodec implements Codec on top of github.com/disintegration/imaging,
// with WebP support from github.com/chai2010/webp.
type ImagingCodec struct {
	// JPEGQuality is passed to the JPEG encoder (1-100).
	JPEGQuality int
	// PNGCompression selects the PNG compression level.
	PNGCompression png.CompressionLevel
}

// NewImagingCodec returns an ImagingCodec with the default encoder settings.
func NewImagingCodec() *ImagingCodec {
	return &ImagingCodec{
		JPEGQuality:    95,
		PNGCompression: png.DefaultCompression,
	}
}

// Decode opens and decodes the file at path. EXIF orientation is ignored so
// the decoded pixels match the stored raster exactly.
func (c *ImagingCodec) Decode(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}

	// libwebp returns straight RGBA, which webp.Decode labels as premultiplied.
	if isWebP(data) {
		m, err := webp.DecodeRGBA(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode image %s", path)
		}
		return &image.NRGBA{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}

// Encode writes img to w in the requested format.
//
// Arguments:
//   - w: The destination writer.
//   - img: The image to encode.
//   - format: The target format.
//
// Returns:
//   - error: ErrUnsupportedFormat (wrapped) for unknown formats, or the encoder error.
func (c *ImagingCodec) Encode(w io.Writer, img image.Image, format ImageFormat) error {
	if format == FormatWebP {
		if err := webp.Encode(w, straightRGBA(img), &webp.Options{Lossless: true, Exact: true}); err != nil {
			return errors.Wrap(err, "failed to encode webp")
		}
		return nil
	}

	f, ok := format.imagingFormat()
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}

	err := imaging.Encode(w, img, f,
		imaging.JPEGQuality(c.JPEGQuality),
		imaging.PNGCompressionLevel(c.PNGCompression),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return nil
}

// NewCanvas allocates a new canvas filled with fill.
func (c *ImagingCodec) NewCanvas(width, height int, fill color.Color) *image.NRGBA {
	return imaging.New(width, height, fill)
}

// Paste returns a copy of dst with src pasted at pt.
func (c *ImagingCodec) Paste(dst *image.NRGBA, src image.Image, pt image.Point) *image.NRGBA {
	return imaging.Paste(dst, src, pt)
}

// straightRGBA exposes the non-premultiplied pixels of img under an
// *image.RGBA header. The webp encoder passes RGBA buffers to libwebp as is,
// and libwebp expects straight alpha.
func straightRGBA(img image.Image) *image.RGBA {
	n, ok := img.(*image.NRGBA)
	if !ok {
		n = imaging.Clone(img)
	}
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}

// isWebP reports whether data starts with a RIFF WEBP header.
func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}
