package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"edumarket/internal/storage"

	"go.uber.org/zap"
)

const backupVersion = "1.0"

// BackupData is the complete store snapshot written by Export.
// Collections maps each present storage key to its stored JSON document.
type BackupData struct {
	Version     string                     `json:"version"`
	ExportedAt  time.Time                  `json:"exported_at"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// BackupService handles store export and restore
type BackupService struct {
	backend storage.Backend
	logger  *zap.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(backend storage.Backend, logger *zap.Logger) *BackupService {
	return &BackupService{backend: backend, logger: logger}
}

// Export writes a snapshot of every key to outputPath
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}
	s.logger.Info("Store exported", zap.String("path", outputPath))
	return nil
}

// ExportToWriter writes a snapshot of every key to w
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:     backupVersion,
		ExportedAt:  time.Now(),
		Collections: make(map[string]json.RawMessage),
	}

	for _, key := range storage.AllKeys {
		data, found, err := s.backend.Get(key)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
		if !found {
			continue
		}
		if !json.Valid(data) {
			return fmt.Errorf("failed to export %s: stored value is not valid JSON", key)
		}
		backup.Collections[key] = json.RawMessage(data)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	s.logger.Info("Exported collections", zap.Int("count", len(backup.Collections)))
	return nil
}

// Import restores the store from the snapshot at inputPath
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores the store from a snapshot.
// Keys missing from the snapshot are removed so the store matches it exactly.
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != backupVersion {
		return fmt.Errorf("unsupported backup version %q", backup.Version)
	}
	s.logger.Info("Importing backup", zap.Time("exported_at", backup.ExportedAt))

	values := make(map[string][]byte, len(backup.Collections))
	for key, raw := range backup.Collections {
		if !slices.Contains(storage.AllKeys, key) {
			return fmt.Errorf("backup contains unknown key %q", key)
		}
		values[key] = raw
	}

	if batch, ok := s.backend.(storage.BatchWriter); ok {
		if err := batch.SetMany(values); err != nil {
			return fmt.Errorf("failed to import collections: %w", err)
		}
	} else {
		for key, value := range values {
			if err := s.backend.Set(key, value); err != nil {
				return fmt.Errorf("failed to import %s: %w", key, err)
			}
		}
	}

	for _, key := range storage.AllKeys {
		if _, ok := values[key]; ok {
			continue
		}
		if err := s.backend.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	s.logger.Info("Backup import completed", zap.Int("collections", len(values)))
	return nil
}
