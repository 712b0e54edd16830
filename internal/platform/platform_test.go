package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppDataDir(t *testing.T) {
	dir, err := AppDataDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("Expected directory named %s, got %s", AppName, dir)
	}
}

func TestEnsureAppDataDirCreates(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := CreateDirectoryIfNotExists(nested); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(nested); err != nil {
		t.Fatalf("Expected no error on existing directory, got %v", err)
	}
}

func TestParsePrinterList(t *testing.T) {
	output := "Zebra_ZD420\nHP_LaserJet\n\n  Office_Printer  \n"

	names := parsePrinterList(output)
	expected := []string{"Zebra_ZD420", "HP_LaserJet", "Office_Printer"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d printers, got %d: %v", len(expected), len(names), names)
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("Printer %d: expected %s, got %s", i, want, names[i])
		}
	}
}

func TestParsePrinterListEmpty(t *testing.T) {
	if names := parsePrinterList(""); len(names) != 0 {
		t.Errorf("Expected no printers from empty output, got %v", names)
	}
	if names := parsePrinterList("\n\n"); len(names) != 0 {
		t.Errorf("Expected no printers from blank output, got %v", names)
	}
}

func TestParsePrinterListNoTrailingNewline(t *testing.T) {
	names := parsePrinterList("OnlyPrinter")
	if len(names) != 1 || names[0] != "OnlyPrinter" {
		t.Errorf("Expected [OnlyPrinter], got %v", names)
	}
}

func TestAppDataDirUnderConfig(t *testing.T) {
	dir, err := AppDataDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// On every platform the path ends in the app name; on non-Windows it
	// lives under .config.
	if !strings.Contains(dir, AppName) {
		t.Errorf("Expected app name in path, got %s", dir)
	}
}
