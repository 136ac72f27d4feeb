// Package loader reads whitespace-separated vector text files and
// directories of them, and drives an index's Add through them. It sits outside the index core as an independent consumer of
// its public API.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/swapneel/go-hnsw/internal/telemetry"
	"github.com/swapneel/go-hnsw/pkg/vector"
)

// Indexer is the subset of *hnsw.Index the loader drives. Accepting an
// interface here (rather than importing pkg/hnsw directly) keeps the
// loader decoupled from the index package.
type Indexer interface {
	Add(item vector.Item) error
}

// ReadFile parses a whitespace-separated vector text file: one vector
// per line, empty lines skipped. Ids are assigned starting at nextID
// and increase monotonically per line.
func ReadFile(path string, nextID uint64) ([]vector.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	var items []vector.Item
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		vec := make([]float64, len(fields))
		for i, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("loader: %s:%d: invalid component %q: %w", path, lineNo, field, err)
			}
			vec[i] = f
		}

		items = append(items, vector.Item{ID: nextID, Vector: vec})
		nextID++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}

	return items, nil
}

// LoadDirectory walks dir non-recursively, reading every regular file
// in lexical order and feeding the parsed vectors into idx via Add.
// Ids are assigned monotonically across the whole directory, not reset
// per file. Returns the total number of items added.
func LoadDirectory(dir string, idx Indexer, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("loader: read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var nextID uint64
	total := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		items, err := ReadFile(path, nextID)
		if err != nil {
			logger.Warn("aborting on unreadable vector file", zap.String("path", path), zap.Error(err))
			return total, err
		}

		for _, item := range items {
			if err := idx.Add(item); err != nil {
				return total, fmt.Errorf("loader: adding item %d from %s: %w", item.ID, path, err)
			}
			total++
			nextID++
		}

		logger.Debug("loaded vector file",
			telemetry.Operation("load_file"),
			zap.String("path", path),
			telemetry.Count(len(items)),
		)
	}

	logger.Info("loaded vector directory",
		telemetry.Operation("load_directory"),
		zap.String("dir", dir),
		telemetry.Count(total),
	)

	return total, nil
}
