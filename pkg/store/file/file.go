package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"conceptgraph/pkg/common"
)

// FileGraphStore persists graphs as indented JSON files under a base
// directory, one file per key.
type FileGraphStore struct {
	dir string
}

// NewFileGraphStore creates a file-backed graph store rooted at dir. The
// directory is created if it does not exist.
func NewFileGraphStore(dir string) (*FileGraphStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create graph dir: %w", err)
	}
	return &FileGraphStore{dir: dir}, nil
}

// SaveGraph writes the graph to <dir>/<key>.json via a temp file rename,
// so readers never observe a partially written artifact.
func (s *FileGraphStore) SaveGraph(ctx context.Context, key string, graph common.Graph) error {
	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".graph-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write graph: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close graph file: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

// LoadGraph reads the graph stored under key.
func (s *FileGraphStore) LoadGraph(ctx context.Context, key string) (common.Graph, error) {
	path, err := s.path(key)
	if err != nil {
		return common.Graph{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return common.Graph{}, fmt.Errorf("failed to read graph %s: %w", key, err)
	}

	var graph common.Graph
	if err := json.Unmarshal(data, &graph); err != nil {
		return common.Graph{}, fmt.Errorf("failed to parse graph %s: %w", key, err)
	}
	return graph, nil
}

func (s *FileGraphStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid graph key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
