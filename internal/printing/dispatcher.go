package printing

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Dispatcher sends composed label images to a named printer.
type Dispatcher interface {
	// ListPrinters returns the printer names the OS reports, possibly empty.
	ListPrinters() []string

	// Send prints img on the named printer, scaled uniformly to fit the
	// printable area and centered within it. Failures come back as *Error.
	Send(img image.Image, printerName string) error
}

// NewDispatcher returns the printing backend for the current platform
func NewDispatcher() Dispatcher {
	return newPlatformDispatcher()
}

// placement is the result of fitting an image into a printable area:
// the scaled size and the centered top-left offset, all in device units.
type placement struct {
	width  int
	height int
	x      int
	y      int
}

// fitToArea computes the uniform-scale placement of an imgW x imgH image
// inside an areaW x areaH printable area. Uniform scaling preserves aspect
// ratio and guarantees the image fits on both axes.
func fitToArea(areaW, areaH, imgW, imgH int) placement {
	scale := math.Min(float64(areaW)/float64(imgW), float64(areaH)/float64(imgH))
	width := int(math.Round(float64(imgW) * scale))
	height := int(math.Round(float64(imgH) * scale))
	return placement{
		width:  width,
		height: height,
		x:      (areaW - width) / 2,
		y:      (areaH - height) / 2,
	}
}

// scaleImage resizes img to width x height with bilinear interpolation
func scaleImage(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
