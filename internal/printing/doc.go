package printing

// Package printing dispatches composed label images to a named printer. The
// concrete backend is platform-gated: Windows prints through a GDI printer
// device context, every other platform reports UnsupportedPlatform without
// touching any driver.
