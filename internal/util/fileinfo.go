package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~/ and makes the path absolute
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// EnsureDir creates the directory and any missing parents
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
