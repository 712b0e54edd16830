package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dannyphamv/barcode-printer/internal/config"
	"github.com/dannyphamv/barcode-printer/internal/history"
	"github.com/dannyphamv/barcode-printer/internal/label"
	"github.com/dannyphamv/barcode-printer/internal/pipeline"
	"github.com/dannyphamv/barcode-printer/internal/platform"
	"github.com/dannyphamv/barcode-printer/internal/printing"
	"github.com/dannyphamv/barcode-printer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.dannyphamv.barcode-printer"
	AppName = "Barcode Printer"

	WindowWidth  = 900
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Nothing works without the app data directory: no config, no ledger.
	appDataDir, err := platform.EnsureAppDataDir()
	if err != nil {
		slog.Error("failed to create app data directory", "err", err)
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	configStore := config.NewStore(appDataDir)
	ledger := history.NewLedger(appDataDir)
	if err := ledger.EnsureInitialized(); err != nil {
		slog.Error("failed to initialize history ledger", "path", ledger.Path(), "err", err)
		os.Exit(1)
	}

	composer := label.NewComposer()
	dispatcher := printing.NewDispatcher()
	pipe := pipeline.NewPipeline(composer, dispatcher, ledger)

	// Create and setup UI
	ui.NewRootUI(myWindow, pipe, dispatcher, ledger, composer, configStore)

	// Show and run
	myWindow.ShowAndRun()
}
