package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "ghexplorer"

	// Version is reported by --version and sent in the User-Agent header
	Version = "0.1.0"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the ghexplorer configuration directory path,
// creating it if needed.
// Linux: ~/.config/ghexplorer (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\ghexplorer (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	return appDir, errDir
}

// UserAgent identifies ghexplorer to the GitHub API.
func UserAgent() string {
	return AppName + "/" + Version
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)

		return
	}

	appDir = filepath.Join(baseDir, AppName)

	if err := os.MkdirAll(appDir, 0o700); err != nil {
		errDir = fmt.Errorf("failed to create config directory: %w", err)
	}
}
