package diskfs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Service answers filesystem questions against the real disk.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

func (service *Service) FolderExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FolderWritable probes the folder with a temporary file instead of trusting
// mode bits, which lie on CIFS and ACL mounts.
func (service *Service) FolderWritable(path string) bool {
	probe, err := os.CreateTemp(path, ".write-probe-*")
	if err != nil {
		service.logger.Debug("Folder is not writable", "path", path, "error", err)
		return false
	}
	probe.Close()
	if err := os.Remove(probe.Name()); err != nil {
		service.logger.Warn("Failed to remove a write probe", "path", probe.Name(), "error", err)
	}
	return true
}

// GetDirectories lists the absolute paths of the immediate subdirectories of
// path, in directory order.
func (service *Service) GetDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		result = append(result, filepath.Join(path, entry.Name()))
	}
	return result, nil
}

func (service *Service) FolderLastModified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("os.Stat: %w", err)
	}
	return info.ModTime(), nil
}
