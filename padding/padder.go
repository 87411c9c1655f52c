package padding

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/nvr-ai/go-pad/images"
	"github.com/nvr-ai/go-pad/util"
	"github.com/pkg/errors"
)

// Result reports the outcome of a successful Pad.
type Result struct {
	// OutputPath is where the padded image was written.
	OutputPath string `json:"outputPath" yaml:"outputPath"`
	// Original is the size of the source image.
	Original Size `json:"original" yaml:"original"`
	// Padded is the size of the written image.
	Padded Size `json:"padded" yaml:"padded"`
	// Offset is the top-left corner of the source within the padded image.
	Offset image.Point `json:"offset" yaml:"offset"`
	// Format is the encoding chosen from the output extension.
	Format images.ImageFormat `json:"format" yaml:"format"`
	// Checksum is the pixel checksum of the padded image.
	Checksum string `json:"checksum" yaml:"checksum"`
}

// String summarizes the size change.
func (r *Result) String() string {
	return fmt.Sprintf("Original size: %s, New size: %s", r.Original, r.Padded)
}

// Option configures a Padder.
type Option func(*Padder)

// WithScaleFactor sets the scale factor. Values below 1 make Pad fail with ErrInvalidScale.
func WithScaleFactor(scale int) Option {
	return func(p *Padder) {
		p.scale = scale
	}
}

// WithCodec replaces the imaging backend.
func WithCodec(codec images.Codec) Option {
	return func(p *Padder) {
		p.codec = codec
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(p *Padder) {
		p.logger = logger
	}
}

// Padder centers images on transparent canvases.
type Padder struct {
	scale     int
	codec     images.Codec
	logger    *log.Logger
	debugMode bool
}

// New creates a Padder. Without options it scales by DefaultScaleFactor,
// uses images.ImagingCodec and logs to the standard logger.
//
// @example
//
//	padder := padding.New()
//	result, err := padder.Pad("icon.png", "icon_spaced.png")
func New(opts ...Option) *Padder {
	p := &Padder{
		scale:  DefaultScaleFactor,
		codec:  images.NewImagingCodec(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetDebugMode enables or disables debug logging.
func (p *Padder) SetDebugMode(enabled bool) {
	p.debugMode = enabled
}

// ScaleFactor returns the configured scale factor.
func (p *Padder) ScaleFactor() int {
	return p.scale
}

// Pad reads inputPath, centers it on a transparent canvas ScaleFactor times
// its width and height, and writes the result to outputPath in the format
// implied by the output extension. An existing file at outputPath is replaced.
//
// outputPath is only replaced after the whole image has been encoded; on any
// failure it is left as it was.
//
// Arguments:
//   - inputPath: The image to pad.
//   - outputPath: Where to write the padded image.
//
// Returns:
//   - *Result: Output path, sizes, offset and checksum on success.
//   - error: ErrInvalidScale, *DecodeError, *EncodeError or *UnexpectedError.
func (p *Padder) Pad(inputPath, outputPath string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UnexpectedError{Err: errors.Errorf("panic while padding %s: %v", inputPath, r)}
		}
	}()

	if p.scale < 1 {
		return nil, errors.Wrapf(ErrInvalidScale, "got %d", p.scale)
	}

	src, err := p.codec.Decode(inputPath)
	if err != nil {
		return nil, &DecodeError{Path: inputPath, Err: err}
	}

	bounds := src.Bounds()
	if p.debugMode {
		p.logger.Printf("[DEBUG] Decoded %s: %dx%d (%T)", inputPath, bounds.Dx(), bounds.Dy(), src)
	}

	layout, err := ComputeLayout(bounds.Dx(), bounds.Dy(), p.scale)
	if err != nil {
		if errors.Is(err, ErrEmptyImage) {
			return nil, &DecodeError{Path: inputPath, Err: err}
		}
		return nil, &UnexpectedError{Err: err}
	}

	if p.debugMode {
		p.logger.Printf("[DEBUG] Layout: canvas %s, offset (%d, %d), scale %d",
			layout.Canvas, layout.Offset.X, layout.Offset.Y, layout.Scale)
	}

	format, err := images.FormatFromPath(outputPath)
	if err != nil {
		return nil, &EncodeError{Path: outputPath, Err: err}
	}
	if !format.SupportsAlpha() {
		p.logger.Printf("Warning: %s cannot store transparency, padding will be flattened", format)
	}

	canvas := p.codec.NewCanvas(layout.Canvas.Width, layout.Canvas.Height, color.Transparent)
	canvas = p.codec.Paste(canvas, src, layout.Offset)

	err = util.WriteFileAtomic(outputPath, func(w io.Writer) error {
		return p.codec.Encode(w, canvas, format)
	})
	if err != nil {
		return nil, &EncodeError{Path: outputPath, Err: err}
	}

	if p.debugMode {
		p.logger.Printf("[DEBUG] Wrote %s as %s", outputPath, format)
	}

	return &Result{
		OutputPath: outputPath,
		Original:   layout.Source,
		Padded:     layout.Canvas,
		Offset:     layout.Offset,
		Format:     format,
		Checksum:   images.Checksum(canvas),
	}, nil
}
