package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// LinuxFileManagers are tried in order when xdg-open fails
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

var (
	// ErrNoFolder is returned when no folder has been chosen
	ErrNoFolder = errors.New("no folder selected")

	// ErrFolderMissing is returned when the folder does not exist
	ErrFolderMissing = errors.New("folder does not exist")
)

// runCommand starts an opener and waits for it. Replaced in tests.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// OpenDirectory shows dir in the system file manager
func OpenDirectory(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ErrNoFolder
	}
	if !IsExistingDir(dir) {
		return fmt.Errorf("%w: %s", ErrFolderMissing, dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, absDir)
	case OSWindows:
		// explorer exits non-zero even when the window opened
		_ = runCommand(ExplorerCommand, absDir)
		return nil
	default:
		return openDirectoryLinux(absDir)
	}
}

func openDirectoryLinux(dir string) error {
	if err := runCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return runCommand(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// IsExistingDir reports whether path names an existing directory
func IsExistingDir(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// HomeDir returns the user's home directory, or "." when it is unknown
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
