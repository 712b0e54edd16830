package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// AppName is the directory name used for per-user application data
const AppName = "BarcodeApp"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AppDataDir returns the per-user application data directory:
// %APPDATA%\BarcodeApp on Windows, ~/.config/BarcodeApp everywhere else.
func AppDataDir() (string, error) {
	if runtime.GOOS == OSWindows {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable is not set")
		}
		return filepath.Join(appData, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// EnsureAppDataDir resolves the app data directory and creates it if missing.
// This is the one startup step that may fail the process: neither the config
// file nor the history ledger has a home without it.
func EnsureAppDataDir() (string, error) {
	dir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create app data directory %s: %w", dir, err)
	}
	return dir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
