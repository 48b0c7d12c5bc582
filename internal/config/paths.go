package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for usdasm.
type Paths struct {
	// ConfigFile is the path to the config file (~/.usdassemble/config.yaml).
	ConfigFile string

	// HomeDir is the usdasm home directory (~/.usdassemble).
	HomeDir string
}

// DefaultPaths returns the default paths for usdasm.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	asmHome := filepath.Join(homeDir, ".usdassemble")

	return &Paths{
		ConfigFile: filepath.Join(asmHome, "config.yaml"),
		HomeDir:    asmHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If USDA_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("USDA_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the usdasm home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
