package images

import (
	"bufio"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"
)

// DrawCodec implements Codec with the standard encoders and golang.org/x/image.
// It has no WebP encoder.
type DrawCodec struct{}

// NewDrawCodec returns a DrawCodec.
func NewDrawCodec() *DrawCodec {
	return &DrawCodec{}
}

// Decode opens and decodes the file at path using the registered decoders.
// WebP always goes through golang.org/x/image/webp.
func (c *DrawCodec) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var img image.Image
	if head, _ := r.Peek(12); isWebP(head) {
		img, err = xwebp.Decode(r)
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}

// Encode writes img to w in the requested format.
func (c *DrawCodec) Encode(w io.Writer, img image.Image, format ImageFormat) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return nil
}

// NewCanvas allocates a new canvas filled with fill.
func (c *DrawCodec) NewCanvas(width, height int, fill color.Color) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return canvas
}

// Paste copies src into dst in place and returns dst.
func (c *DrawCodec) Paste(dst *image.NRGBA, src image.Image, pt image.Point) *image.NRGBA {
	sb := src.Bounds()
	dr := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}.Intersect(dst.Bounds())
	if dr.Empty() {
		return dst
	}

	// NRGBA rows are copied byte for byte so partially transparent pixels
	// survive unchanged.
	if s, ok := src.(*image.NRGBA); ok {
		sp := sb.Min.Add(dr.Min.Sub(pt))
		n := dr.Dx() * 4
		for y := 0; y < dr.Dy(); y++ {
			di := dst.PixOffset(dr.Min.X, dr.Min.Y+y)
			si := s.PixOffset(sp.X, sp.Y+y)
			copy(dst.Pix[di:di+n], s.Pix[si:si+n])
		}
		return dst
	}

	draw.Copy(dst, dr.Min, src, image.Rectangle{Min: sb.Min.Add(dr.Min.Sub(pt)), Max: sb.Max}, draw.Src, nil)
	return dst
}
