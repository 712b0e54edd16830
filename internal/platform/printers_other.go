//go:build !windows

package platform

import "os/exec"

// Command constants
const (
	LpstatCommand = "lpstat"
	LpstatFlag    = "-e"
)

// listPrinters enumerates printers through CUPS. `lpstat -e` prints one
// destination name per line; a missing lpstat binary or a CUPS error reads
// as "no printers".
func listPrinters() []string {
	out, err := exec.Command(LpstatCommand, LpstatFlag).Output()
	if err != nil {
		return nil
	}
	return parsePrinterList(string(out))
}
