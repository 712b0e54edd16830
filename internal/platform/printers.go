package platform

import "strings"

// ListPrinters returns the display names of the printers configured on this
// machine, in the order the OS reports them. An empty slice is a valid
// degraded state; callers disable submission when no printer is available.
func ListPrinters() []string {
	return listPrinters()
}

// parsePrinterList splits `lpstat -e` output into printer names, one per line.
func parsePrinterList(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}
