//go:build windows

package printing

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dannyphamv/barcode-printer/internal/platform"
)

var (
	gdi32 = windows.NewLazySystemDLL("gdi32.dll")

	procCreateDC      = gdi32.NewProc("CreateDCW")
	procDeleteDC      = gdi32.NewProc("DeleteDC")
	procGetDeviceCaps = gdi32.NewProc("GetDeviceCaps")
	procStartDoc      = gdi32.NewProc("StartDocW")
	procEndDoc        = gdi32.NewProc("EndDoc")
	procStartPage     = gdi32.NewProc("StartPage")
	procEndPage       = gdi32.NewProc("EndPage")
	procStretchDIBits = gdi32.NewProc("StretchDIBits")
)

// GetDeviceCaps indexes
const (
	capHorzRes = 8
	capVertRes = 10
)

// GDI constants
const (
	dibRGBColors = 0
	srcCopy      = 0x00CC0020
	biRGB        = 0
)

const printJobName = "Barcode Print"

// docInfoW mirrors DOCINFOW
type docInfoW struct {
	size     int32
	docName  *uint16
	output   *uint16
	datatype *uint16
	fwType   uint32
}

// bitmapInfoHeader mirrors BITMAPINFOHEADER
type bitmapInfoHeader struct {
	size          uint32
	width         int32
	height        int32
	planes        uint16
	bitCount      uint16
	compression   uint32
	sizeImage     uint32
	xPelsPerMeter int32
	yPelsPerMeter int32
	clrUsed       uint32
	clrImportant  uint32
}

// gdiDispatcher prints through a GDI printer device context
type gdiDispatcher struct{}

func newPlatformDispatcher() Dispatcher {
	return gdiDispatcher{}
}

func (gdiDispatcher) ListPrinters() []string {
	return platform.ListPrinters()
}

// Send acquires a printer DC, scales img to the printable area, blits it
// centered and closes the job. The DC is released on every exit path, and a
// page/doc that started is always ended before returning, so a drawing
// failure never leaves the spooler with an open job.
func (gdiDispatcher) Send(img image.Image, printerName string) error {
	namePtr, err := windows.UTF16PtrFromString(printerName)
	if err != nil {
		return &Error{Kind: PrinterUnavailable, Cause: err}
	}
	driverPtr, err := windows.UTF16PtrFromString("WINSPOOL")
	if err != nil {
		return &Error{Kind: DriverFailure, Cause: err}
	}

	hdc, _, callErr := procCreateDC.Call(
		uintptr(unsafe.Pointer(driverPtr)),
		uintptr(unsafe.Pointer(namePtr)),
		0, 0,
	)
	if hdc == 0 {
		return &Error{Kind: PrinterUnavailable, Cause: fmt.Errorf("CreateDC(%q): %v", printerName, callErr)}
	}
	defer procDeleteDC.Call(hdc)

	printableW, _, _ := procGetDeviceCaps.Call(hdc, capHorzRes)
	printableH, _, _ := procGetDeviceCaps.Call(hdc, capVertRes)
	if printableW == 0 || printableH == 0 {
		return &Error{Kind: DriverFailure, Cause: fmt.Errorf("printable area reported as %dx%d", printableW, printableH)}
	}

	bounds := img.Bounds()
	place := fitToArea(int(printableW), int(printableH), bounds.Dx(), bounds.Dy())
	scaled := scaleImage(img, place.width, place.height)

	docName, err := windows.UTF16PtrFromString(printJobName)
	if err != nil {
		return &Error{Kind: DriverFailure, Cause: err}
	}
	docInfo := docInfoW{size: int32(unsafe.Sizeof(docInfoW{})), docName: docName}

	if ret, _, callErr := procStartDoc.Call(hdc, uintptr(unsafe.Pointer(&docInfo))); int32(ret) <= 0 {
		return &Error{Kind: DriverFailure, Cause: fmt.Errorf("StartDoc: %v", callErr)}
	}
	defer procEndDoc.Call(hdc)

	if ret, _, callErr := procStartPage.Call(hdc); int32(ret) <= 0 {
		return &Error{Kind: DriverFailure, Cause: fmt.Errorf("StartPage: %v", callErr)}
	}
	defer procEndPage.Call(hdc)

	if err := drawBitmap(hdc, scaled, place); err != nil {
		return &Error{Kind: DriverFailure, Cause: err}
	}
	return nil
}

// drawBitmap blits an RGBA image onto the device context as a top-down
// 32-bit DIB at the placement offsets.
func drawBitmap(hdc uintptr, img *image.RGBA, place placement) error {
	header := bitmapInfoHeader{
		size:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		width:       int32(place.width),
		height:      -int32(place.height), // negative height = top-down row order
		planes:      1,
		bitCount:    32,
		compression: biRGB,
	}

	// GDI expects BGRA pixel ordering.
	pix := make([]byte, len(img.Pix))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		pix[i] = img.Pix[i+2]
		pix[i+1] = img.Pix[i+1]
		pix[i+2] = img.Pix[i]
		pix[i+3] = img.Pix[i+3]
	}

	ret, _, callErr := procStretchDIBits.Call(
		hdc,
		uintptr(place.x), uintptr(place.y),
		uintptr(place.width), uintptr(place.height),
		0, 0,
		uintptr(place.width), uintptr(place.height),
		uintptr(unsafe.Pointer(&pix[0])),
		uintptr(unsafe.Pointer(&header)),
		dibRGBColors,
		srcCopy,
	)
	if ret == 0 {
		return fmt.Errorf("StretchDIBits: %v", callErr)
	}
	return nil
}
