// Package label renders barcode values into fixed-size printable label images.
package label

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Label geometry
const (
	LabelWidth  = 600
	LabelHeight = 300

	// The Code128 symbol is scaled to this size before being centered on the
	// label. Very long values can exceed symbolWidth; the symbol then keeps
	// its natural width and overflows the label instead of failing.
	symbolWidth  = 400
	symbolHeight = 160
)

// GenerationError reports a failure to encode a value into a barcode symbol.
type GenerationError struct {
	Value string
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("barcode generation failed for %q: %v", e.Value, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Encoder produces a raster barcode symbol for a value
type Encoder func(value string) (image.Image, error)

// Code128Encoder encodes value as a Code128 symbol scaled to the standard
// symbol size. Empty values and characters outside the Code128 charset are
// rejected by the encoding library itself.
func Code128Encoder(value string) (image.Image, error) {
	symbol, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}

	width := symbolWidth
	if natural := symbol.Bounds().Dx(); natural > width {
		width = natural
	}
	return barcode.Scale(symbol, width, symbolHeight)
}

// Composer renders label images: one barcode symbol centered on a fixed-size
// white canvas. Compose has no side effects; each call allocates a fresh
// canvas that the caller owns.
type Composer struct {
	width  int
	height int
	encode Encoder
}

// NewComposer creates a composer with the standard label geometry and
// Code128 encoding
func NewComposer() *Composer {
	return NewComposerWithEncoder(Code128Encoder)
}

// NewComposerWithEncoder creates a composer using a custom symbol encoder
func NewComposerWithEncoder(encode Encoder) *Composer {
	return &Composer{width: LabelWidth, height: LabelHeight, encode: encode}
}

// Compose encodes value and returns the finished label image. Values the
// symbology rejects (including the empty string) come back as a
// *GenerationError; Compose does not pre-validate input.
func (c *Composer) Compose(value string) (image.Image, error) {
	symbol, err := c.encode(value)
	if err != nil {
		return nil, &GenerationError{Value: value, Cause: err}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	// Integer-truncating centering. Offsets go negative when the symbol is
	// larger than the label; the symbol is then cropped, never an error.
	bounds := symbol.Bounds()
	x := (c.width - bounds.Dx()) / 2
	y := (c.height - bounds.Dy()) / 2
	target := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(canvas, target, symbol, bounds.Min, draw.Over)

	return canvas, nil
}
