package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	PreviewMinWidth  float32 = 300
	PreviewMinHeight float32 = 150
)

// Text fragments
const (
	EntryPlaceholder    = "Scan or type barcode, then hit Enter (ex. DT6qbz2RRMA)"
	NoPrintersMessage   = "No printers available"
	EmptyHistoryMessage = "No print history available."
)
