package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/matzehuels/ifcgraph/pkg/cache"
	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/ifc"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// Model is a parsed IFC file.
type Model struct {
	Path  string
	Hash  string // SHA-256 of the file content
	Graph *refgraph.Graph
}

// readModel reads path and returns its content and content hash.
func readModel(path string) ([]byte, string, error) {
	if err := errors.ValidateInputFile(path, ifc.Extension); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidFile, err, "read %s", path)
	}
	return data, cache.Hash(data), nil
}

// Parse reads and parses an IFC file without caching.
func Parse(path string) (*Model, error) {
	data, hash, err := readModel(path)
	if err != nil {
		return nil, err
	}
	return parseData(path, hash, data)
}

func parseData(path, hash string, data []byte) (*Model, error) {
	g, err := ifc.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Model{Path: path, Hash: hash, Graph: g}, nil
}

// Trace extracts the part of the model reachable from tag.
// An unknown tag yields an ErrCodeTagNotFound error.
func Trace(m *Model, tag string, maxDepth int) (*refgraph.Trace, error) {
	start := ifc.NormalizeTag(tag)
	if !m.Graph.Has(start) {
		return nil, errors.New(errors.ErrCodeTagNotFound, "tag %s does not exist in %s", start, m.Path)
	}
	t, err := m.Graph.Reach(start, refgraph.ReachOptions{MaxDepth: maxDepth})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "trace %s", start)
	}
	return t, nil
}
