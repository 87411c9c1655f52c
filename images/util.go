package images

import (
	"crypto/md5"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Checksum generates a deterministic checksum of an image's pixels to verify idempotency.
//
// The image is normalized to non-premultiplied RGBA first, so two images with
// identical pixels hash the same regardless of their concrete type or bounds origin.
// An *image.NRGBA with contiguous rows is hashed in place without a copy.
//
// Arguments:
// - img: The image to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := Checksum(canvas)
//	fmt.Printf("Canvas checksum: %s\n", checksum)
//
// ```
func Checksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*w {
		nrgba = imaging.Clone(img)
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", w, h)
	hash.Write(nrgba.Pix[:4*w*h])
	return fmt.Sprintf("%x", hash.Sum(nil))
}
