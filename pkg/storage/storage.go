// Package storage is the byte-level file layer around the pipeline:
// exact-encoding reads, atomic overwrites, one-time backups, and log
// appends. The pipeline itself never touches the filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct{}

// ReadFile returns the file's exact bytes.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// SaveFile writes content atomically: a temp file in the destination
// directory, then a rename over the target.
func (s *Storage) SaveFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// HasFile reports whether a file exists at path.
func (s *Storage) HasFile(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// BackupIfAbsent copies path to path+suffix unless that backup already
// exists. Returns the backup path and whether a new backup was made.
func (s *Storage) BackupIfAbsent(path, suffix string) (string, bool, error) {
	backup := path + suffix
	if s.HasFile(backup) {
		return backup, false, nil
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	if err := s.SaveFile(backup, data); err != nil {
		return "", false, err
	}
	return backup, true, nil
}

// AppendLog appends content to the log file at path, creating it if
// needed. Pre-existing log content stays in place.
func (s *Storage) AppendLog(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("appending to log %s: %w", path, err)
	}
	return nil
}

// LogPath resolves where the issue log for outputPath lives: a file
// named logName in the same directory, or in the current directory when
// outputPath carries no separator.
func LogPath(outputPath, logName string) string {
	if !strings.ContainsRune(outputPath, os.PathSeparator) && !strings.ContainsRune(outputPath, '/') {
		return logName
	}
	return filepath.Join(filepath.Dir(outputPath), logName)
}
