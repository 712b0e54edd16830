//go:build !windows

package printing

import (
	"image"

	"github.com/dannyphamv/barcode-printer/internal/platform"
)

// stubDispatcher is the backend for platforms without native printer DC
// access. Enumeration still works so the UI can show what the OS reports;
// sending always fails fast.
type stubDispatcher struct{}

func newPlatformDispatcher() Dispatcher {
	return stubDispatcher{}
}

func (stubDispatcher) ListPrinters() []string {
	return platform.ListPrinters()
}

// Send fails immediately with UnsupportedPlatform. No driver call is ever
// attempted here.
func (stubDispatcher) Send(_ image.Image, _ string) error {
	return &Error{Kind: UnsupportedPlatform}
}
