//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	winspool         = windows.NewLazySystemDLL("winspool.drv")
	procEnumPrinters = winspool.NewProc("EnumPrintersW")
)

// EnumPrinters flags and level
const (
	printerEnumLocal       = 0x00000002
	printerEnumConnections = 0x00000004
	printerInfoLevel       = 4
)

// printerInfo4 mirrors PRINTER_INFO_4W
type printerInfo4 struct {
	printerName *uint16
	serverName  *uint16
	attributes  uint32
}

// listPrinters enumerates local printers and printer connections through the
// spooler, matching what the Windows printing dialog shows.
func listPrinters() []string {
	flags := uintptr(printerEnumLocal | printerEnumConnections)

	// First call sizes the buffer.
	var needed, returned uint32
	procEnumPrinters.Call(flags, 0, printerInfoLevel, 0, 0,
		uintptr(unsafe.Pointer(&needed)), uintptr(unsafe.Pointer(&returned)))
	if needed == 0 {
		return nil
	}

	buf := make([]byte, needed)
	ret, _, _ := procEnumPrinters.Call(flags, 0, printerInfoLevel,
		uintptr(unsafe.Pointer(&buf[0])), uintptr(needed),
		uintptr(unsafe.Pointer(&needed)), uintptr(unsafe.Pointer(&returned)))
	if ret == 0 || returned == 0 {
		return nil
	}

	infos := unsafe.Slice((*printerInfo4)(unsafe.Pointer(&buf[0])), returned)
	names := make([]string, 0, returned)
	for _, info := range infos {
		if info.printerName != nil {
			names = append(names, windows.UTF16PtrToString(info.printerName))
		}
	}
	return names
}
