package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/natefinch/atomic"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data as TOML and replaces filePath atomically,
// so a watcher never observes a half written config.
func SaveTOMLFile(data any, filePath string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return errors.Wrap(err, "encode toml")
	}
	if err := atomic.WriteFile(filePath, &buf); err != nil {
		log.Errorf("Failed to write file: %v", err)
		return errors.Wrapf(err, "write %s", filePath)
	}
	return nil
}

// ReadTextFile reads a buffer from disk, refusing files larger than maxBytes.
// maxBytes <= 0 disables the limit.
func ReadTextFile(path string, maxBytes int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", errors.Newf("%s is larger than %d bytes", path, maxBytes)
	}
	return string(data), nil
}

// GetAbsolutePath returns the absolute path of a file
func GetAbsolutePath(configPath string) string {
	if configPath == "" {
		return "unknown"
	}

	if !filepath.IsAbs(configPath) {
		if absPath, err := filepath.Abs(configPath); err == nil {
			return absPath
		}
	}
	return configPath
}
