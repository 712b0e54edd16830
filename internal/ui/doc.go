package ui

// Package ui contains the Fyne-based desktop user interface. It wires the
// scan entry, printer selection and history panel to the print pipeline and
// renders the label preview, reprint selection, and status messages.
