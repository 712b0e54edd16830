package pipeline

import (
	"image"
	"time"
)

// Composer renders a label image for a barcode value.
type Composer interface {
	Compose(value string) (image.Image, error)
}

// Dispatcher sends a composed label image to a named printer.
type Dispatcher interface {
	Send(img image.Image, printerName string) error
}

// Ledger records successfully printed values.
type Ledger interface {
	Append(barcodeValue string, when time.Time) error
}
