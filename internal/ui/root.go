package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dannyphamv/barcode-printer/internal/config"
	"github.com/dannyphamv/barcode-printer/internal/history"
	"github.com/dannyphamv/barcode-printer/internal/label"
	"github.com/dannyphamv/barcode-printer/internal/model"
	"github.com/dannyphamv/barcode-printer/internal/pipeline"
	"github.com/dannyphamv/barcode-printer/internal/printing"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	pipe        *pipeline.Pipeline
	dispatcher  printing.Dispatcher
	ledger      *history.Ledger
	composer    *label.Composer
	configStore *config.Store
	document    config.Document

	printers        []string
	selectedPrinter string

	records  []model.HistoryRecord
	selected map[int]bool

	printerSelect  *widget.Select
	barcodeEntry   *widget.Entry
	printBtn       *widget.Button
	autoPrintCheck *widget.Check
	previewImage   *canvas.Image
	statusLabel    *widget.Label
	historyList    *widget.List
	historyEmpty   *widget.Label
	reprintBtn     *widget.Button
	clearBtn       *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, pipe *pipeline.Pipeline, dispatcher printing.Dispatcher,
	ledger *history.Ledger, composer *label.Composer, configStore *config.Store) *RootUI {

	ui := &RootUI{
		window:      window,
		pipe:        pipe,
		dispatcher:  dispatcher,
		ledger:      ledger,
		composer:    composer,
		configStore: configStore,
		document:    configStore.Load(),
		selected:    make(map[int]bool),
	}

	ui.printers = dispatcher.ListPrinters()
	slog.Info("ui: printers enumerated", "count", len(ui.printers))

	// Pipeline status updates feed the status line.
	pipe.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	ui.refreshHistory()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Printer selection, seeded from the remembered printer when it is
	// still present in the enumerated list.
	ui.printerSelect = widget.NewSelect(ui.printers, ui.onPrinterSelected)
	if last := ui.document.LastPrinterName(); last != "" {
		for _, name := range ui.printers {
			if name == last {
				ui.printerSelect.SetSelected(last)
				break
			}
		}
	}
	if ui.printerSelect.Selected == "" && len(ui.printers) > 0 {
		ui.printerSelect.SetSelected(ui.printers[0])
	}

	// Barcode entry with live preview and Enter-to-print.
	ui.barcodeEntry = widget.NewEntry()
	ui.barcodeEntry.SetPlaceHolder(EntryPlaceholder)
	ui.barcodeEntry.OnChanged = ui.onValueChanged
	ui.barcodeEntry.OnSubmitted = ui.onValueSubmitted

	ui.printBtn = widget.NewButton("Print", ui.onPrintClick)

	ui.autoPrintCheck = widget.NewCheck("Auto-print on scan", ui.onAutoPrintToggled)
	ui.autoPrintCheck.SetChecked(ui.document.AutoPrintEnabled)

	ui.previewImage = canvas.NewImageFromImage(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))

	ui.statusLabel = widget.NewLabel("")

	// History panel: newest-first list with per-row selection for reprint.
	ui.historyList = widget.NewList(
		func() int { return len(ui.records) },
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)
	ui.historyEmpty = widget.NewLabel(EmptyHistoryMessage)

	ui.reprintBtn = widget.NewButton("Reprint Selected", ui.onReprintClick)
	ui.clearBtn = widget.NewButton("Clear Print History", ui.onClearClick)
	ui.clearBtn.Importance = widget.DangerImportance

	if len(ui.printers) == 0 {
		// Degraded state: nothing to print to, so submission is disabled.
		ui.barcodeEntry.Disable()
		ui.printBtn.Disable()
		ui.reprintBtn.Disable()
		ui.statusLabel.SetText(NoPrintersMessage)
	}

	topPanel := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Printer:"), ui.autoPrintCheck, ui.printerSelect),
		container.NewBorder(nil, nil, nil, ui.printBtn, ui.barcodeEntry),
	)

	centerPanel := container.NewBorder(nil, ui.statusLabel, nil, nil, ui.previewImage)

	historyButtons := container.NewVBox(ui.reprintBtn, ui.clearBtn)
	historyPanel := container.NewBorder(
		widget.NewLabel("Print History"), historyButtons, nil, nil,
		container.NewStack(ui.historyList, ui.historyEmpty),
	)

	content := container.NewBorder(topPanel, nil, nil, historyPanel, centerPanel)
	ui.window.SetContent(content)
}

// onPrinterSelected persists the chosen printer as the new last-used one
func (ui *RootUI) onPrinterSelected(name string) {
	ui.selectedPrinter = name
	if name == "" || name == ui.document.LastPrinterName() {
		return
	}
	ui.document.SetLastPrinter(name)
	if !ui.configStore.Save(ui.document) {
		// Best-effort persistence: the selection still works this session.
		slog.Warn("ui: failed to remember printer selection", "printer", name)
	}
}

// onAutoPrintToggled persists the auto-print flag
func (ui *RootUI) onAutoPrintToggled(enabled bool) {
	if enabled == ui.document.AutoPrintEnabled {
		return
	}
	ui.document.AutoPrintEnabled = enabled
	if !ui.configStore.Save(ui.document) {
		slog.Warn("ui: failed to persist auto-print flag", "enabled", enabled)
	}
}

// onValueChanged regenerates the label preview as the operator types
func (ui *RootUI) onValueChanged(value string) {
	if value == "" {
		ui.previewImage.Image = nil
		ui.previewImage.Refresh()
		return
	}
	img, err := ui.composer.Compose(value)
	if err != nil {
		// Preview failures are advisory; printing reports its own errors.
		ui.statusLabel.SetText(err.Error())
		return
	}
	ui.previewImage.Image = img
	ui.previewImage.Refresh()
}

// onValueSubmitted handles Enter in the barcode entry
func (ui *RootUI) onValueSubmitted(value string) {
	if !ui.document.AutoPrintEnabled {
		ui.statusLabel.SetText("Auto-print is off; use the Print button.")
		return
	}
	triggered, err := ui.pipe.AutoSubmit(value, ui.selectedPrinter)
	if err != nil {
		ui.reportError(err)
		return
	}
	if triggered {
		ui.afterPrint(value)
	}
}

// onPrintClick prints the current entry value regardless of the auto flag
func (ui *RootUI) onPrintClick() {
	value := ui.barcodeEntry.Text
	if err := ui.pipe.SubmitOne(value, ui.selectedPrinter); err != nil {
		ui.reportError(err)
		return
	}
	ui.afterPrint(value)
}

// afterPrint refreshes state after a successful print
func (ui *RootUI) afterPrint(value string) {
	ui.statusLabel.SetText(fmt.Sprintf("Sent %s to printer: %s", value, ui.selectedPrinter))
	ui.barcodeEntry.SetText("")
	ui.refreshHistory()
}

// onReprintClick reprints the selected history rows in display order
func (ui *RootUI) onReprintClick() {
	var values []string
	for i, record := range ui.records {
		if ui.selected[i] {
			values = append(values, record.Barcode)
		}
	}
	if len(values) == 0 {
		ui.statusLabel.SetText("Select history rows to reprint first.")
		return
	}

	result := ui.pipe.ReprintSelected(values, ui.selectedPrinter)
	message := fmt.Sprintf("Reprinted %d barcode(s)", result.Printed)
	if len(result.Failures) > 0 {
		message += fmt.Sprintf(", %d failed", len(result.Failures))
	}
	dialog.ShowInformation("Reprint", message, ui.window)

	ui.selected = make(map[int]bool)
	ui.refreshHistory()
}

// onClearClick clears the history ledger after confirmation
func (ui *RootUI) onClearClick() {
	dialog.ShowConfirm("Clear Print History",
		"This permanently deletes all print history. Continue?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.ledger.Clear(); err != nil {
				ui.reportError(err)
				return
			}
			ui.selected = make(map[int]bool)
			ui.statusLabel.SetText("Print history cleared.")
			ui.refreshHistory()
		}, ui.window)
}

// onJobUpdate reflects pipeline job transitions in the status line
func (ui *RootUI) onJobUpdate(job *model.PrintJob) {
	switch job.Status {
	case model.JobStatusComposing:
		ui.statusLabel.SetText(fmt.Sprintf("Generating label for %s...", job.Value))
	case model.JobStatusPrinting:
		ui.statusLabel.SetText(fmt.Sprintf("Printing %s...", job.Value))
	case model.JobStatusError:
		slog.Warn("ui: print job failed", "job", job.ID, "value", job.Value, "err", job.LastError)
	}
}

// refreshHistory reloads the ledger and reorders it newest-first
func (ui *RootUI) refreshHistory() {
	records, err := ui.ledger.ReadAll()
	if err != nil {
		ui.reportError(err)
		return
	}
	ui.records = history.SortedNewestFirst(records)

	if len(ui.records) == 0 {
		ui.historyEmpty.Show()
	} else {
		ui.historyEmpty.Hide()
	}
	ui.historyList.Refresh()
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	check := widget.NewCheck("", nil)
	value := widget.NewLabel("barcode")
	printedAt := widget.NewLabel("timestamp")
	return container.NewHBox(check, value, layout.NewSpacer(), printedAt)
}

// updateHistoryItem updates a history row with current record data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.records) {
		return
	}
	record := ui.records[id]

	row := obj.(*fyne.Container)
	check := row.Objects[0].(*widget.Check)
	value := row.Objects[1].(*widget.Label)
	printedAt := row.Objects[3].(*widget.Label)

	// Detach the handler before syncing state so recycling a row does not
	// flip the selection it previously showed.
	check.OnChanged = nil
	check.SetChecked(ui.selected[id])
	check.OnChanged = func(checked bool) {
		ui.selected[id] = checked
	}

	value.SetText(record.Barcode)
	printedAt.SetText(record.Timestamp())
}

// reportError surfaces an error to the operator without crashing anything
func (ui *RootUI) reportError(err error) {
	slog.Error("ui: operation failed", "err", err)
	ui.statusLabel.SetText(err.Error())
	dialog.ShowError(err, ui.window)
}
