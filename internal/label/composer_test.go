package label

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

// solidEncoder returns an encoder producing a uniform black image of the
// given size, standing in for the real symbology.
func solidEncoder(width, height int) Encoder {
	return func(string) (image.Image, error) {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, color.Black)
			}
		}
		return img, nil
	}
}

func TestComposeDimensions(t *testing.T) {
	composer := NewComposerWithEncoder(solidEncoder(200, 100))

	img, err := composer.Compose("ABC123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != LabelWidth || bounds.Dy() != LabelHeight {
		t.Errorf("Expected %dx%d label, got %dx%d", LabelWidth, LabelHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestComposeCentersSymbol(t *testing.T) {
	composer := NewComposerWithEncoder(solidEncoder(200, 100))

	img, err := composer.Compose("ABC123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Symbol spans x [200,400), y [100,200) for a 200x100 symbol.
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	checks := []struct {
		x, y int
		want color.RGBA
		desc string
	}{
		{0, 0, white, "top-left corner"},
		{599, 299, white, "bottom-right corner"},
		{300, 150, black, "label center"},
		{199, 150, white, "just left of symbol"},
		{200, 150, black, "symbol left edge"},
	}

	for _, check := range checks {
		got := color.RGBAModel.Convert(img.At(check.x, check.y)).(color.RGBA)
		if got != check.want {
			t.Errorf("Pixel at %s (%d,%d): expected %v, got %v", check.desc, check.x, check.y, check.want, got)
		}
	}
}

func TestComposeOversizedSymbol(t *testing.T) {
	// Symbol larger than the label: offsets go negative and the symbol is
	// cropped, not rejected.
	composer := NewComposerWithEncoder(solidEncoder(700, 400))

	img, err := composer.Compose("ABC123")
	if err != nil {
		t.Fatalf("Expected no error for oversized symbol, got %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != LabelWidth || bounds.Dy() != LabelHeight {
		t.Errorf("Expected label dimensions %dx%d, got %dx%d", LabelWidth, LabelHeight, bounds.Dx(), bounds.Dy())
	}

	got := color.RGBAModel.Convert(img.At(0, 150)).(color.RGBA)
	if (got != color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected cropped symbol to cover the left edge, got %v", got)
	}
}

func TestComposeEncoderError(t *testing.T) {
	cause := fmt.Errorf("unsupported character")
	composer := NewComposerWithEncoder(func(string) (image.Image, error) {
		return nil, cause
	})

	_, err := composer.Compose("???")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Expected *GenerationError, got %T", err)
	}
	if genErr.Value != "???" {
		t.Errorf("Expected value '???' in error, got '%s'", genErr.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to wrap the encoder cause")
	}
}

func TestComposeCode128(t *testing.T) {
	composer := NewComposer()

	img, err := composer.Compose("DT6qbz2RRMA")
	if err != nil {
		t.Fatalf("Expected no error for valid value, got %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != LabelWidth || bounds.Dy() != LabelHeight {
		t.Errorf("Expected %dx%d label, got %dx%d", LabelWidth, LabelHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestComposeEmptyValue(t *testing.T) {
	composer := NewComposer()

	// The composer does not pre-validate; the symbology rejects empty input.
	_, err := composer.Compose("")
	if err == nil {
		t.Fatal("Expected error for empty value, got nil")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Errorf("Expected *GenerationError, got %T", err)
	}
}
