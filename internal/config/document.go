package config

import "encoding/json"

// Config keys persisted in the JSON document
const (
	KeyLastPrinter      = "last_printer"
	KeyAutoPrintEnabled = "auto_print_enabled"
)

// Default values
const (
	DefaultAutoPrintEnabled = true
)

// Document is the persisted application configuration. Unknown keys found in
// the file survive load/save cycles untouched, so older versions of the app
// never strip settings written by newer ones.
type Document struct {
	LastPrinter      *string
	AutoPrintEnabled bool

	extra map[string]json.RawMessage
}

// DefaultDocument returns the configuration used when nothing is persisted:
// no remembered printer, auto-print on.
func DefaultDocument() Document {
	return Document{AutoPrintEnabled: DefaultAutoPrintEnabled}
}

// SetLastPrinter remembers printerName as the last-used printer
func (d *Document) SetLastPrinter(printerName string) {
	d.LastPrinter = &printerName
}

// LastPrinterName returns the remembered printer name, or "" if none
func (d *Document) LastPrinterName() string {
	if d.LastPrinter == nil {
		return ""
	}
	return *d.LastPrinter
}

// MarshalJSON emits the recognized keys alongside any preserved unknown ones.
func (d Document) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(d.extra)+2)
	for k, v := range d.extra {
		doc[k] = v
	}

	lastPrinter, err := json.Marshal(d.LastPrinter)
	if err != nil {
		return nil, err
	}
	doc[KeyLastPrinter] = lastPrinter

	autoPrint, err := json.Marshal(d.AutoPrintEnabled)
	if err != nil {
		return nil, err
	}
	doc[KeyAutoPrintEnabled] = autoPrint

	return json.Marshal(doc)
}

// UnmarshalJSON merges persisted values over the defaults. A key that is
// absent or null keeps its default; the merge never removes defaults.
func (d *Document) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = DefaultDocument()

	if v, ok := raw[KeyLastPrinter]; ok {
		var lastPrinter *string
		if err := json.Unmarshal(v, &lastPrinter); err == nil && lastPrinter != nil {
			d.LastPrinter = lastPrinter
		}
	}
	if v, ok := raw[KeyAutoPrintEnabled]; ok {
		var autoPrint *bool
		if err := json.Unmarshal(v, &autoPrint); err == nil && autoPrint != nil {
			d.AutoPrintEnabled = *autoPrint
		}
	}

	delete(raw, KeyLastPrinter)
	delete(raw, KeyAutoPrintEnabled)
	if len(raw) > 0 {
		d.extra = raw
	}
	return nil
}
