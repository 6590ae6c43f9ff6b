package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/richard-senior/plp/internal/logger"
)

// Provider snapshots are cached on disk as brotli-compressed JSON so a
// previously resolved table survives restarts without refetching anything.

// WriteStatsSnapshot stores a name-to-stats table at the given path
func WriteStatsSnapshot(path string, table map[string]*TeamStats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	writer := brotli.NewWriter(file)
	if err := json.NewEncoder(writer).Encode(table); err != nil {
		writer.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}

	logger.Debug("Wrote stats snapshot", path, len(table))
	return nil
}

// ReadStatsSnapshot loads a previously written snapshot
func ReadStatsSnapshot(path string) (map[string]*TeamStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	var table map[string]*TeamStats
	if err := json.NewDecoder(brotli.NewReader(file)).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot, perhaps consider deleting cache files: %w", err)
	}

	logger.Debug("Read stats snapshot", path, len(table))
	return table, nil
}

// SnapshotProvider resolves team statistics from a cached snapshot file
type SnapshotProvider struct {
	table map[string]*TeamStats
}

// NewSnapshotProvider loads the snapshot at path into a provider
func NewSnapshotProvider(path string) (*SnapshotProvider, error) {
	table, err := ReadStatsSnapshot(path)
	if err != nil {
		return nil, err
	}
	return &SnapshotProvider{table: table}, nil
}

// FetchTeamStats resolves the named team from the snapshot, degrading to the
// default statistics for unknown teams
func (sp *SnapshotProvider) FetchTeamStats(name string) *TeamStats {
	stats, ok := sp.table[name]
	if !ok {
		return DefaultTeamStats()
	}
	return stats
}
