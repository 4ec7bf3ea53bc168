package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "burntrack"
	dbFileName = "burntrack.db"
)

func DefaultDBPath() (string, error) {
	if fromEnv := os.Getenv("BURNTRACK_DB"); fromEnv != "" {
		return fromEnv, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
